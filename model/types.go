package model

import "fmt"

// Each tag serializes as a single byte.
const (
	DataTypeSize        = 1
	CompressionTypeSize = 1
	EncodingTypeSize    = 1
)

var (
	ErrUnknownDataType        = fmt.Errorf("model err: unknown data type tag")
	ErrUnknownCompressionType = fmt.Errorf("model err: unknown compression type tag")
	ErrUnknownEncodingType    = fmt.Errorf("model err: unknown encoding type tag")
)

// DataType is the logical value type of a column.
type DataType byte

const (
	Boolean DataType = iota
	Int32
	Int64
	Float
	Double
	Text
)

func ParseDataType(b byte) (DataType, error) {
	if b > byte(Text) {
		return 0, ErrUnknownDataType
	}
	return DataType(b), nil
}

func (t DataType) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case Text:
		return "TEXT"
	}
	return fmt.Sprintf("DataType(%d)", byte(t))
}

// CompressionType is the compression algorithm applied to the chunk payload.
type CompressionType byte

const (
	Uncompressed CompressionType = 0
	Snappy       CompressionType = 1
	Gzip         CompressionType = 2
	LZO          CompressionType = 3
	LZ4          CompressionType = 7
	Zstd         CompressionType = 8
)

func ParseCompressionType(b byte) (CompressionType, error) {
	switch CompressionType(b) {
	case Uncompressed, Snappy, Gzip, LZO, LZ4, Zstd:
		return CompressionType(b), nil
	}
	return 0, ErrUnknownCompressionType
}

func (t CompressionType) String() string {
	switch t {
	case Uncompressed:
		return "UNCOMPRESSED"
	case Snappy:
		return "SNAPPY"
	case Gzip:
		return "GZIP"
	case LZO:
		return "LZO"
	case LZ4:
		return "LZ4"
	case Zstd:
		return "ZSTD"
	}
	return fmt.Sprintf("CompressionType(%d)", byte(t))
}

// EncodingType is the value-encoding scheme applied before compression.
type EncodingType byte

const (
	Plain EncodingType = iota
	Dictionary
	RLE
	Diff
	TS2Diff
	Bitmap
	GorillaV1
	Regular
	Gorilla
)

func ParseEncodingType(b byte) (EncodingType, error) {
	if b > byte(Gorilla) {
		return 0, ErrUnknownEncodingType
	}
	return EncodingType(b), nil
}

func (t EncodingType) String() string {
	switch t {
	case Plain:
		return "PLAIN"
	case Dictionary:
		return "DICTIONARY"
	case RLE:
		return "RLE"
	case Diff:
		return "DIFF"
	case TS2Diff:
		return "TS_2DIFF"
	case Bitmap:
		return "BITMAP"
	case GorillaV1:
		return "GORILLA_V1"
	case Regular:
		return "REGULAR"
	case Gorilla:
		return "GORILLA"
	}
	return fmt.Sprintf("EncodingType(%d)", byte(t))
}
