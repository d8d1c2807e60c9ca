package chunkio

import (
	"path/filepath"

	"github.com/chunkio/chunkio/codec"
	"github.com/chunkio/chunkio/fio"
	"github.com/chunkio/chunkio/index"
	"github.com/chunkio/chunkio/model"
)

type options struct {
	codec codec.Codec
	index index.Index

	ioManagerCreator func(dirPath string) (fio.IOManager, error)
}

type Option func(*options)

var defaultIOManagerCreator = func(dirPath string) (fio.IOManager, error) {
	return fio.NewFileIO(filepath.Join(dirPath, model.DataFileName))
}

func defaultOptions() options {
	return options{
		codec:            codec.NewHeaderCodec(),
		index:            index.NewBTree(0),
		ioManagerCreator: defaultIOManagerCreator,
	}
}

func WithIOManagerCreator(fn func(dirPath string) (fio.IOManager, error)) Option {
	return func(o *options) {
		o.ioManagerCreator = fn
	}
}

func WithCodec(codec codec.Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

func WithIndex(index index.Index) Option {
	return func(o *options) {
		o.index = index
	}
}
