package index

import "github.com/chunkio/chunkio/model"

// Index maps a measurement id to the positions of its chunks, in file
// order. You can use some other data structure once you implement this
// interface.
type Index interface {
	Put(measurement string, pos *model.ChunkPos)
	Get(measurement string) []*model.ChunkPos
	Size() int
	Iterator() Iterator
	Close() error
}

// Iterator walks measurements in ascending order.
type Iterator interface {
	Rewind()
	Next()
	Valid() bool
	Measurement() string
	Positions() []*model.ChunkPos
}
