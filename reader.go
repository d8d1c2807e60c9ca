package chunkio

import (
	"encoding/binary"
	"io"

	"github.com/chunkio/chunkio/fio"
	"github.com/chunkio/chunkio/model"
	"github.com/chunkio/chunkio/utils"
)

// Reader serves positioned chunk reads over a directory's data file. Opening
// scans the file once to rebuild the measurement index, after that every
// read is random access.
type Reader struct {
	ioManager fio.IOManager

	options options
}

func OpenReader(dirPath string, opts ...Option) (*Reader, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ioManager, err := o.ioManagerCreator(dirPath)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		ioManager: ioManager,
		options:   o,
	}
	if err = r.loadIndex(); err != nil {
		_ = ioManager.Close()
		return nil, err
	}
	return r, nil
}

// loadIndex walks the file sequentially, decoding each header after reading
// its marker byte and skipping over the payload.
func (r *Reader) loadIndex() error {
	size, err := r.ioManager.Size()
	if err != nil {
		return err
	}

	var offset int64
	for offset < size {
		var marker [1]byte
		if _, err = r.ioManager.ReadAt(marker[:], offset); err != nil {
			return err
		}
		chunkType := model.ChunkType(marker[0])
		switch chunkType.Marker() {
		case model.ChunkHeaderMarker, model.OnlyOnePageChunkHeaderMarker:
		default:
			return ErrUnknownMarker
		}

		sr := io.NewSectionReader(r.ioManager, offset+1, size-offset-1)
		header, err := r.options.codec.ReadHeader(sr, chunkType)
		if err != nil {
			return err
		}

		total := int64(header.SerializedSize()) + int64(header.DataSize) + model.CrcSize
		if offset+total > size {
			return ErrChunkCorrupted
		}
		r.options.index.Put(header.MeasurementID, &model.ChunkPos{
			Offset: offset,
			Size:   total,
		})
		offset += total
	}
	return nil
}

// Measurements lists the indexed measurement ids in ascending order.
func (r *Reader) Measurements() []string {
	measurements := make([]string, 0, r.options.index.Size())
	for it := r.options.index.Iterator(); it.Valid(); it.Next() {
		measurements = append(measurements, it.Measurement())
	}
	return measurements
}

// Chunks returns the positions of a measurement's chunks in file order.
func (r *Reader) Chunks(measurement string) []*model.ChunkPos {
	return r.options.index.Get(measurement)
}

// ReadChunkAt decodes the header at pos and reads the payload behind it,
// verifying the crc trailer.
func (r *Reader) ReadChunkAt(pos *model.ChunkPos) (*model.Chunk, error) {
	header, err := r.options.codec.ReadHeaderAt(r.ioManager, pos.Offset, nil)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, header.DataSize)
	payloadOffset := pos.Offset + int64(header.SerializedSize())
	if len(payload) > 0 {
		if _, err = r.ioManager.ReadAt(payload, payloadOffset); err != nil {
			return nil, err
		}
	}

	var crcBuf [model.CrcSize]byte
	if _, err = r.ioManager.ReadAt(crcBuf[:], payloadOffset+int64(header.DataSize)); err != nil {
		return nil, err
	}
	if !utils.CheckCrc(binary.BigEndian.Uint32(crcBuf[:]), payload) {
		return nil, ErrChunkCorrupted
	}

	return &model.Chunk{Header: header, Data: payload}, nil
}

// ChunkCompressionAndEncoding decodes only the compression and encoding tags
// of the chunk at pos, without materializing the measurement id or payload.
func (r *Reader) ChunkCompressionAndEncoding(pos *model.ChunkPos) (model.CompressionType, model.EncodingType, error) {
	probe := make([]byte, 1+binary.MaxVarintLen32)
	n, err := r.ioManager.ReadAt(probe, pos.Offset)
	if err != nil && n == 0 {
		return 0, 0, err
	}
	strLen, un := binary.Uvarint(probe[1:n])
	if un <= 0 {
		return 0, 0, ErrChunkCorrupted
	}

	fieldsOffset := pos.Offset + int64(1+un) + int64(strLen)
	sr := io.NewSectionReader(r.ioManager, fieldsOffset, pos.Offset+pos.Size-fieldsOffset)
	return r.options.codec.ReadCompressionAndEncoding(sr)
}

func (r *Reader) Close() error {
	if err := r.options.index.Close(); err != nil {
		return err
	}
	return r.ioManager.Close()
}
