package model

import "fmt"

// ChunkHeader is the metadata record written before every chunk payload.
//
// ChunkType, MeasurementID, DataSize and the three tags are serialized;
// NumOfPages and the cached serialized size are in-memory bookkeeping only.
// Identity fields are fixed at construction, DataSize and NumOfPages are the
// mutable accumulation region updated through Merge/SetDataSize/
// IncreasePageNums under single-writer ownership.
type ChunkHeader struct {
	ChunkType       ChunkType
	MeasurementID   string
	DataSize        uint32
	DataType        DataType
	CompressionType CompressionType
	EncodingType    EncodingType

	// not serialized
	NumOfPages     int
	serializedSize int
}

// NewChunkHeader builds a header for a chunk about to be written. The
// structural marker is derived from numOfPages and OR-ed with the flag bits
// in mask. headerSize must come from the codec's ExactSize for the same
// (measurementID, dataSize) pair.
func NewChunkHeader(measurementID string, dataSize uint32, headerSize int,
	dataType DataType, compressionType CompressionType, encodingType EncodingType,
	numOfPages int, mask ChunkType) *ChunkHeader {
	return &ChunkHeader{
		ChunkType:       DeriveChunkType(numOfPages, mask),
		MeasurementID:   measurementID,
		DataSize:        dataSize,
		DataType:        dataType,
		CompressionType: compressionType,
		EncodingType:    encodingType,
		NumOfPages:      numOfPages,
		serializedSize:  headerSize,
	}
}

// NewDecodedChunkHeader builds a header from decoded bytes. chunkType is
// taken verbatim and NumOfPages stays 0: the page count is not recoverable
// from a bare header, callers discover it by walking the payload.
func NewDecodedChunkHeader(chunkType ChunkType, measurementID string, dataSize uint32,
	headerSize int, dataType DataType, compressionType CompressionType,
	encodingType EncodingType) *ChunkHeader {
	return &ChunkHeader{
		ChunkType:       chunkType,
		MeasurementID:   measurementID,
		DataSize:        dataSize,
		DataType:        dataType,
		CompressionType: compressionType,
		EncodingType:    encodingType,
		serializedSize:  headerSize,
	}
}

// SerializedSize is the encoded byte length of this header, cached at
// construction time.
func (h *ChunkHeader) SerializedSize() int {
	return h.serializedSize
}

// Merge folds the counters of a physically adjacent same-column chunk into
// this header. No validation of type/compression/encoding compatibility is
// done here, that is the caller's responsibility.
func (h *ChunkHeader) Merge(other *ChunkHeader) {
	h.DataSize += other.DataSize
	h.NumOfPages += other.NumOfPages
}

func (h *ChunkHeader) SetDataSize(dataSize uint32) {
	h.DataSize = dataSize
}

func (h *ChunkHeader) IncreasePageNums(n int) {
	h.NumOfPages += n
}

func (h *ChunkHeader) String() string {
	return fmt.Sprintf("CHUNK_HEADER{measurementID=%q, dataSize=%d, dataType=%s, compressionType=%s, encodingType=%s, numOfPages=%d, serializedSize=%d}",
		h.MeasurementID, h.DataSize, h.DataType, h.CompressionType, h.EncodingType, h.NumOfPages, h.serializedSize)
}
