package codec

import "fmt"

var (
	ErrShortBuffer     = addPrefix("buffer too small for header")
	ErrMalformedVarint = addPrefix("varint exceeds 32-bit range")
	ErrInvalidString   = addPrefix("measurement id is not valid utf-8")
)

func addPrefix(errStr string) error {
	return fmt.Errorf("codec err: %s", errStr)
}
