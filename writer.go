package chunkio

import (
	"encoding/binary"
	"math"
	"os"
	"sync"

	"github.com/chunkio/chunkio/fio"
	"github.com/chunkio/chunkio/index"
	"github.com/chunkio/chunkio/model"
	"github.com/chunkio/chunkio/utils"
)

// Writer appends chunks to the data file of one directory. A directory has
// at most one writer at a time, guarded by a file lock.
type Writer struct {
	lock sync.Locker

	file    *model.ChunkFile
	dirLock fio.FileLocker

	options options
}

func Open(dirPath string, opts ...Option) (*Writer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return nil, err
	}

	dirLock := fio.NewFlock(dirPath)
	ok, err := dirLock.TryLock()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDirIsUsing
	}

	ioManager, err := o.ioManagerCreator(dirPath)
	if err != nil {
		_ = dirLock.Unlock()
		return nil, err
	}

	file, err := model.OpenChunkFile(ioManager)
	if err != nil {
		_ = ioManager.Close()
		_ = dirLock.Unlock()
		return nil, err
	}

	return &Writer{
		lock:    &sync.Mutex{},
		file:    file,
		dirLock: dirLock,
		options: o,
	}, nil
}

// WriteChunk concatenates the page buffers into one payload and appends
// header + payload + crc trailer. Pages must already be encoded and
// compressed, the payload passes through opaque.
func (w *Writer) WriteChunk(measurement string, dataType model.DataType,
	compressionType model.CompressionType, encodingType model.EncodingType,
	pages [][]byte) (*model.ChunkPos, error) {
	return w.WriteVectorChunk(measurement, dataType, compressionType, encodingType, pages, 0)
}

// WriteVectorChunk is WriteChunk with extra flag bits OR-ed onto the marker,
// used for the time/value columns of a vector.
func (w *Writer) WriteVectorChunk(measurement string, dataType model.DataType,
	compressionType model.CompressionType, encodingType model.EncodingType,
	pages [][]byte, mask model.ChunkType) (*model.ChunkPos, error) {
	if len(measurement) == 0 {
		return nil, ErrEmptyMeasurement
	}
	if len(pages) == 0 {
		return nil, ErrNoChunkPages
	}

	var payloadSize int
	for _, page := range pages {
		payloadSize += len(page)
	}
	if int64(payloadSize) > math.MaxUint32 {
		return nil, ErrBigChunk
	}

	cc := w.options.codec
	header := model.NewChunkHeader(measurement, uint32(payloadSize),
		cc.ExactSize(measurement, uint32(payloadSize)),
		dataType, compressionType, encodingType, len(pages), mask)

	buf := make([]byte, header.SerializedSize()+payloadSize+model.CrcSize)
	n, err := cc.PutHeader(buf, header)
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		n += copy(buf[n:], page)
	}
	binary.BigEndian.PutUint32(buf[n:], utils.GenerateCrc(buf[header.SerializedSize():n]))

	w.lock.Lock()
	defer w.lock.Unlock()

	pos := &model.ChunkPos{
		Offset: w.file.WriteOffset,
		Size:   int64(len(buf)),
	}
	if err = w.file.Write(buf); err != nil {
		return nil, err
	}
	w.options.index.Put(measurement, pos)
	return pos, nil
}

// Index exposes the positions of everything written so far.
func (w *Writer) Index() index.Index {
	return w.options.index
}

func (w *Writer) Sync() error {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.file.Sync()
}

func (w *Writer) Close() error {
	w.lock.Lock()
	defer w.lock.Unlock()
	if err := w.file.Sync(); err != nil {
		return err
	}
	if err := w.file.Close(); err != nil {
		return err
	}
	return w.dirLock.Unlock()
}
