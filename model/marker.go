package model

// ChunkType is the first byte of every chunk header. The low bits carry a
// structural marker, the two high bits are independent flags:
//   - ChunkHeaderMarker: chunk has more than one page, each page carries its
//     own page statistics
//   - OnlyOnePageChunkHeaderMarker: chunk has a single page and that page
//     has no page statistics
//   - TimeChunkMask: this chunk is the time column of a vector
//   - ValueChunkMask: this chunk is a value column of a vector
type ChunkType byte

const (
	ChunkHeaderMarker            ChunkType = 0x01
	OnlyOnePageChunkHeaderMarker ChunkType = 0x05

	TimeChunkMask  ChunkType = 1 << 7
	ValueChunkMask ChunkType = 1 << 6

	flagMask = TimeChunkMask | ValueChunkMask
)

// DeriveChunkType picks the structural marker from the page count and ORs
// the caller-supplied flag bits onto it.
func DeriveChunkType(numOfPages int, mask ChunkType) ChunkType {
	marker := ChunkHeaderMarker
	if numOfPages <= 1 {
		marker = OnlyOnePageChunkHeaderMarker
	}
	return marker | (mask & flagMask)
}

// Marker strips the flag bits and returns the structural marker.
func (t ChunkType) Marker() ChunkType {
	return t &^ flagMask
}

// MultiPage reports whether the chunk holds more than one page.
func (t ChunkType) MultiPage() bool {
	return t.Marker() == ChunkHeaderMarker
}

func (t ChunkType) IsTimeChunk() bool {
	return t&TimeChunkMask != 0
}

func (t ChunkType) IsValueChunk() bool {
	return t&ValueChunkMask != 0
}
