package model

import "github.com/chunkio/chunkio/fio"

const (
	DataFileSuffix = ".cks"
	DataFileName   = "chunks" + DataFileSuffix

	// CrcSize is the length of the crc32 trailer written after each payload.
	CrcSize = 4
)

// ChunkPos locates one chunk inside the data file.
type ChunkPos struct {
	Offset int64 // file offset of the header's marker byte
	Size   int64 // header + payload + crc trailer
}

// Chunk is a decoded header together with its raw payload bytes. The payload
// stays opaque here: decompression and value decoding happen elsewhere.
type Chunk struct {
	Header *ChunkHeader
	Data   []byte
}

// ChunkFile wraps an IOManager for the append side.
type ChunkFile struct {
	WriteOffset int64
	IOManager   fio.IOManager
}

func OpenChunkFile(ioManager fio.IOManager) (*ChunkFile, error) {
	size, err := ioManager.Size()
	if err != nil {
		return nil, err
	}
	return &ChunkFile{
		WriteOffset: size,
		IOManager:   ioManager,
	}, nil
}

// Write appends binary data and advances the write offset.
func (cf *ChunkFile) Write(data []byte) error {
	size, err := cf.IOManager.Write(data)
	if err != nil {
		return err
	}
	cf.WriteOffset += int64(size)
	return nil
}

func (cf *ChunkFile) Sync() error {
	return cf.IOManager.Sync()
}

func (cf *ChunkFile) Close() error {
	return cf.IOManager.Close()
}
