package chunkio

import (
	"testing"

	"github.com/chunkio/chunkio/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	w, err := Open(dir)
	require.Nil(t, err)
	require.NotNil(t, w)

	// the directory is locked against a second writer
	_, err = Open(dir)
	assert.Equal(t, ErrDirIsUsing, err)

	assert.Nil(t, w.Close())

	w, err = Open(dir)
	require.Nil(t, err)
	assert.Nil(t, w.Close())
}

func TestWriter_WriteChunk(t *testing.T) {
	w, err := Open(t.TempDir())
	require.Nil(t, err)
	defer w.Close()

	pos, err := w.WriteChunk("s1", model.Int64, model.Snappy, model.TS2Diff,
		[][]byte{{1, 2, 3}, {4, 5}})
	require.Nil(t, err)
	assert.Equal(t, int64(0), pos.Offset)

	// header + 5 payload bytes + crc
	hc := w.options.codec
	assert.Equal(t, int64(hc.ExactSize("s1", 5)+5+model.CrcSize), pos.Size)

	pos2, err := w.WriteChunk("s1", model.Int64, model.Snappy, model.TS2Diff,
		[][]byte{{6}})
	require.Nil(t, err)
	assert.Equal(t, pos.Size, pos2.Offset)

	assert.Equal(t, 2, len(w.Index().Get("s1")))
}

func TestWriter_WriteChunkValidation(t *testing.T) {
	w, err := Open(t.TempDir())
	require.Nil(t, err)
	defer w.Close()

	_, err = w.WriteChunk("", model.Int64, model.Snappy, model.TS2Diff, [][]byte{{1}})
	assert.Equal(t, ErrEmptyMeasurement, err)

	_, err = w.WriteChunk("s1", model.Int64, model.Snappy, model.TS2Diff, nil)
	assert.Equal(t, ErrNoChunkPages, err)
}

func TestWriter_Reopen(t *testing.T) {
	dir := t.TempDir()
	w, err := Open(dir)
	require.Nil(t, err)
	pos, err := w.WriteChunk("s1", model.Boolean, model.Uncompressed, model.Plain, [][]byte{{1}})
	require.Nil(t, err)
	require.Nil(t, w.Close())

	// a reopened writer appends after the existing data
	w, err = Open(dir)
	require.Nil(t, err)
	defer w.Close()
	pos2, err := w.WriteChunk("s2", model.Boolean, model.Uncompressed, model.Plain, [][]byte{{2}})
	require.Nil(t, err)
	assert.Equal(t, pos.Size, pos2.Offset)
}
