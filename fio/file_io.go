package fio

import "os"

// FileIO is the default implement for IOManager
type FileIO struct {
	fd *os.File
}

func NewFileIO(file string) (*FileIO, error) {
	fd, err := os.OpenFile(file, os.O_APPEND|os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	return &FileIO{fd: fd}, nil
}

func (fio *FileIO) ReadAt(p []byte, offset int64) (int, error) {
	return fio.fd.ReadAt(p, offset)
}

func (fio *FileIO) Write(p []byte) (int, error) {
	return fio.fd.Write(p)
}

func (fio *FileIO) Sync() error {
	return fio.fd.Sync()
}

func (fio *FileIO) Size() (int64, error) {
	stat, err := fio.fd.Stat()
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}

func (fio *FileIO) Close() error {
	return fio.fd.Close()
}
