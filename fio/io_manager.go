package fio

// IOManager can be custom in options. ReadAt follows the io.ReaderAt
// contract, so any IOManager can feed the codec's positioned decode.
// Concurrent positioned reads are allowed only if the implementation
// supports them.
type IOManager interface {
	ReadAt(p []byte, offset int64) (int, error)
	Write(p []byte) (int, error)
	Sync() error
	Size() (int64, error)
	Close() error
}
