package codec

import (
	"encoding/binary"
	"io"
	"unicode/utf8"
)

// Both variable-width fields of the header (id length, dataSize) hold 32-bit
// unsigned values, so a valid encoding never exceeds binary.MaxVarintLen32
// bytes and a 5th byte must not carry more than 4 significant bits.
const maxUvarintLen = binary.MaxVarintLen32

func uvarintSize(x uint64) int {
	n := 1
	for x >= 0x80 {
		x >>= 7
		n++
	}
	return n
}

// readUvarint reads a 32-bit unsigned varint byte by byte, never consuming
// past the final byte of the encoding. It also returns the encoded width.
func readUvarint(r io.Reader) (uint32, int, error) {
	var x uint64
	var s uint
	var b [1]byte
	for i := 0; i < maxUvarintLen; i++ {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, i, err
		}
		if b[0] < 0x80 {
			if i == maxUvarintLen-1 && b[0] > 0x0f {
				return 0, i + 1, ErrMalformedVarint
			}
			return uint32(x | uint64(b[0])<<s), i + 1, nil
		}
		x |= uint64(b[0]&0x7f) << s
		s += 7
	}
	return 0, maxUvarintLen, ErrMalformedVarint
}

// readUvarintString reads a uvarint length prefix followed by that many
// UTF-8 bytes.
func readUvarintString(r io.Reader) (string, error) {
	strLen, _, err := readUvarint(r)
	if err != nil {
		return "", err
	}
	return readString(r, int(strLen))
}

func readString(r io.Reader, strLen int) (string, error) {
	if strLen == 0 {
		return "", nil
	}
	buf := make([]byte, strLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidString
	}
	return string(buf), nil
}

func readByte(r io.Reader) (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// skipBytes discards exactly n bytes without interpreting them.
func skipBytes(r io.Reader, n int64) error {
	_, err := io.CopyN(io.Discard, r, n)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}
