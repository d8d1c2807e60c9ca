package codec

import (
	"io"

	"github.com/chunkio/chunkio/model"
)

// Codec encodes and decodes chunk headers. The default wire layout is
//
//	chunkType(1) | idLen(uvarint) | id | dataSize(uvarint) | dataType(1) | compression(1) | encoding(1)
//
// you can implement your own codec to change the on-disk header format.
type Codec interface {
	// ExactSize is the encoded length of a header carrying the given
	// measurement id and data size. The id length is measured in UTF-8
	// bytes, not runes.
	ExactSize(measurementID string, dataSize uint32) int

	// EstimatedSize charges the worst-case uvarint width for dataSize and
	// is a hard upper bound on ExactSize for every representable value.
	// Callers sizing buffers from it must trim after the real serialize.
	EstimatedSize(measurementID string) int

	// WriteHeader serializes to a growable sink, returns bytes written.
	WriteHeader(w io.Writer, header *model.ChunkHeader) (int, error)

	// PutHeader serializes into a caller-sized buffer, byte-identical to
	// WriteHeader output. Returns ErrShortBuffer if buf is too small.
	PutHeader(buf []byte, header *model.ChunkHeader) (int, error)

	// ReadHeader decodes from a sequential source whose marker byte has
	// already been consumed by the caller. Reads exactly the bytes each
	// field needs, never more.
	ReadHeader(r io.Reader, chunkType model.ChunkType) (*model.ChunkHeader, error)

	// ReadHeaderAt decodes from a random-access source, marker byte not
	// yet consumed. ioSizeRecorder, if non-nil, is invoked exactly once
	// with the total bytes requested across the two read phases, which may
	// exceed the header's true encoded length.
	ReadHeaderAt(src io.ReaderAt, offset int64, ioSizeRecorder func(int64)) (*model.ChunkHeader, error)

	// ReadCompressionAndEncoding decodes only the compression and encoding
	// tags from a source positioned at the dataSize field, i.e. the caller
	// has already consumed the marker byte and the measurement id. It
	// consumes exactly the bytes a full decode of the remaining fields
	// would.
	ReadCompressionAndEncoding(r io.Reader) (model.CompressionType, model.EncodingType, error)
}
