package chunkio

import (
	"fmt"
)

var (
	ErrEmptyMeasurement = addPrefix("measurement id is empty")
	ErrNoChunkPages     = addPrefix("chunk has no pages")
	ErrBigChunk         = addPrefix("chunk payload is too big")

	ErrDirIsUsing     = addPrefix("data directory is in use")
	ErrUnknownMarker  = addPrefix("unknown marker byte")
	ErrChunkCorrupted = addPrefix("chunk data may be corrupted")
)

func addPrefix(errStr string) error {
	return fmt.Errorf("chunkio err: %s", errStr)
}
