package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getAll(t *testing.T, tr *Tree) []int64 {
	t.Helper()
	out := make([]int64, tr.Len())
	for i := range out {
		off, err := tr.Get(i)
		require.NoError(t, err)
		out[i] = off
	}
	return out
}

func TestInit_S1(t *testing.T) {
	tr, err := Init([]byte("const\nvar\n"))
	require.NoError(t, err)
	defer tr.Deinit()

	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []int64{0, 6, 10}, getAll(t, tr))
}

func TestInit_S3(t *testing.T) {
	tr, err := Init([]byte("\nzig\nc\nrust\ncpp\n"))
	require.NoError(t, err)
	defer tr.Deinit()

	assert.Equal(t, 6, tr.Len())
	assert.Equal(t, []int64{0, 1, 5, 7, 12, 16}, getAll(t, tr))
}

func TestInit_EmptyBufferRejected(t *testing.T) {
	_, err := Init(nil)
	assert.ErrorIs(t, err, ErrEmptyBuffer)

	_, err = Init([]byte{})
	assert.ErrorIs(t, err, ErrEmptyBuffer)
}

func TestInit_SingleLineNoNewline(t *testing.T) {
	tr, err := Init([]byte("hello"))
	require.NoError(t, err)
	defer tr.Deinit()

	assert.Equal(t, 1, tr.Len())
	off, err := tr.Get(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), off)
}

func TestInit_TrailingNewline(t *testing.T) {
	tr, err := Init([]byte("a\nb\n"))
	require.NoError(t, err)
	defer tr.Deinit()

	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []int64{0, 2, 4}, getAll(t, tr))
}

func TestInit_LargeBalanced(t *testing.T) {
	var buf []byte
	const n = 500
	for i := 0; i < n; i++ {
		buf = append(buf, 'x', '\n')
	}
	tr, err := Init(buf)
	require.NoError(t, err)
	defer tr.Deinit()

	assert.Equal(t, n+1, tr.Len())
	for i := 0; i < tr.Len(); i++ {
		off, err := tr.Get(i)
		require.NoError(t, err)
		assert.Equal(t, int64(i*2), off)
	}
	assertBalanced(t, tr.root)
}
