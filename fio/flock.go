package fio

import (
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileLocker guards a data directory against concurrent writers.
type FileLocker interface {
	TryLock() (bool, error)
	Unlock() error
}

const flockName = "flock"

func NewFlock(dirPath string) *flock.Flock {
	return flock.New(filepath.Join(dirPath, flockName))
}
