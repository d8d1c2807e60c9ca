package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/chunkio/chunkio/model"
)

const (
	// probeSize covers the worst case prefix of a header: the marker byte
	// plus the widest possible id length prefix.
	probeSize = 1 + maxUvarintLen

	tagsSize = model.DataTypeSize + model.CompressionTypeSize + model.EncodingTypeSize
)

// HeaderCodec is the default Codec.
type HeaderCodec struct{}

var _ Codec = (*HeaderCodec)(nil)

func NewHeaderCodec() *HeaderCodec {
	return &HeaderCodec{}
}

func (hc *HeaderCodec) ExactSize(measurementID string, dataSize uint32) int {
	idLen := len(measurementID)
	return 1 + // chunkType
		uvarintSize(uint64(idLen)) + // id length prefix
		idLen + // id bytes
		uvarintSize(uint64(dataSize)) + // dataSize
		tagsSize
}

func (hc *HeaderCodec) EstimatedSize(measurementID string) int {
	idLen := len(measurementID)
	return 1 +
		uvarintSize(uint64(idLen)) +
		idLen +
		maxUvarintLen + // dataSize is unknown yet, charge the widest encoding
		tagsSize
}

func (hc *HeaderCodec) PutHeader(buf []byte, header *model.ChunkHeader) (int, error) {
	if len(buf) < hc.ExactSize(header.MeasurementID, header.DataSize) {
		return 0, ErrShortBuffer
	}
	buf[0] = byte(header.ChunkType)
	idx := 1
	idx += binary.PutUvarint(buf[idx:], uint64(len(header.MeasurementID)))
	idx += copy(buf[idx:], header.MeasurementID)
	idx += binary.PutUvarint(buf[idx:], uint64(header.DataSize))
	buf[idx] = byte(header.DataType)
	buf[idx+1] = byte(header.CompressionType)
	buf[idx+2] = byte(header.EncodingType)
	return idx + tagsSize, nil
}

func (hc *HeaderCodec) WriteHeader(w io.Writer, header *model.ChunkHeader) (int, error) {
	buf := make([]byte, hc.ExactSize(header.MeasurementID, header.DataSize))
	n, err := hc.PutHeader(buf, header)
	if err != nil {
		return 0, err
	}
	return w.Write(buf[:n])
}

func (hc *HeaderCodec) ReadHeader(r io.Reader, chunkType model.ChunkType) (*model.ChunkHeader, error) {
	measurementID, err := readUvarintString(r)
	if err != nil {
		return nil, err
	}
	dataSize, _, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	dataType, compressionType, encodingType, err := readTags(r)
	if err != nil {
		return nil, err
	}
	return model.NewDecodedChunkHeader(chunkType, measurementID, dataSize,
		hc.ExactSize(measurementID, dataSize), dataType, compressionType, encodingType), nil
}

func (hc *HeaderCodec) ReadHeaderAt(src io.ReaderAt, offset int64, ioSizeRecorder func(int64)) (*model.ChunkHeader, error) {
	// phase 1: probe the marker byte and the id length prefix
	probe := make([]byte, probeSize)
	pn, err := src.ReadAt(probe, offset)
	// a short probe is fine when the header sits at the end of the file,
	// the prefix parse below decides whether enough arrived
	if err != nil && (pn == 0 || !errors.Is(err, io.EOF)) {
		return nil, err
	}
	probe = probe[:pn]
	if len(probe) < 2 {
		return nil, io.ErrUnexpectedEOF
	}

	chunkType := model.ChunkType(probe[0])
	strLen, n := binary.Uvarint(probe[1:])
	if n == 0 {
		if len(probe) == probeSize {
			return nil, ErrMalformedVarint
		}
		return nil, io.ErrUnexpectedEOF
	}
	if n < 0 || strLen > math.MaxUint32 {
		return nil, ErrMalformedVarint
	}
	headBytes := 1 + n

	// phase 2: one corrective read, charging the worst-case dataSize width
	// since its true width is still unknown
	remaining := int(strLen) + maxUvarintLen + tagsSize
	if ioSizeRecorder != nil {
		ioSizeRecorder(int64(probeSize + remaining))
	}
	rest := make([]byte, remaining)
	rn, err := src.ReadAt(rest, offset+int64(headBytes))
	if err != nil && (rn == 0 || !errors.Is(err, io.EOF)) {
		return nil, err
	}
	rest = rest[:rn]

	br := bytes.NewReader(rest)
	measurementID, err := readString(br, int(strLen))
	if err != nil {
		return nil, err
	}
	dataSize, _, err := readUvarint(br)
	if err != nil {
		return nil, err
	}
	dataType, compressionType, encodingType, err := readTags(br)
	if err != nil {
		return nil, err
	}

	// the dataSize field may be narrower than the worst-case allowance, so
	// the true header length comes from the parse cursor, not the buffer
	headerSize := headBytes + (len(rest) - br.Len())
	return model.NewDecodedChunkHeader(chunkType, measurementID, dataSize,
		headerSize, dataType, compressionType, encodingType), nil
}

func (hc *HeaderCodec) ReadCompressionAndEncoding(r io.Reader) (model.CompressionType, model.EncodingType, error) {
	if _, _, err := readUvarint(r); err != nil { // dataSize, discarded
		return 0, 0, err
	}
	if err := skipBytes(r, model.DataTypeSize); err != nil { // dataType, uninterpreted
		return 0, 0, err
	}
	cb, err := readByte(r)
	if err != nil {
		return 0, 0, err
	}
	compressionType, err := model.ParseCompressionType(cb)
	if err != nil {
		return 0, 0, err
	}
	eb, err := readByte(r)
	if err != nil {
		return 0, 0, err
	}
	encodingType, err := model.ParseEncodingType(eb)
	if err != nil {
		return 0, 0, err
	}
	return compressionType, encodingType, nil
}

func readTags(r io.Reader) (model.DataType, model.CompressionType, model.EncodingType, error) {
	db, err := readByte(r)
	if err != nil {
		return 0, 0, 0, err
	}
	dataType, err := model.ParseDataType(db)
	if err != nil {
		return 0, 0, 0, err
	}
	cb, err := readByte(r)
	if err != nil {
		return 0, 0, 0, err
	}
	compressionType, err := model.ParseCompressionType(cb)
	if err != nil {
		return 0, 0, 0, err
	}
	eb, err := readByte(r)
	if err != nil {
		return 0, 0, 0, err
	}
	encodingType, err := model.ParseEncodingType(eb)
	if err != nil {
		return 0, 0, 0, err
	}
	return dataType, compressionType, encodingType, nil
}
