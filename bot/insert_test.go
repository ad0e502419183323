package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAfter_S5(t *testing.T) {
	tr, err := Init([]byte("\nzig\nc\nrust\ncpp\n"))
	require.NoError(t, err)
	defer tr.Deinit()

	require.NoError(t, tr.InsertAfter(2))
	assert.Equal(t, 7, tr.Len())
	assert.Equal(t, []int64{0, 1, 5, 7, 8, 13, 17}, getAll(t, tr))
	assertTreeInvariants(t, tr)
}

func TestInsertAfter_S6_Append(t *testing.T) {
	tr, err := Init([]byte("\nzig\nc\nrust\ncpp\n"))
	require.NoError(t, err)
	defer tr.Deinit()

	before := getAll(t, tr)
	require.NoError(t, tr.InsertAfter(5))
	assert.Equal(t, 7, tr.Len())

	got := getAll(t, tr)
	assert.Equal(t, before, got[:6])
	assert.Equal(t, int64(17), got[6])
	assertTreeInvariants(t, tr)
}

func TestInsertAfter_OnSingleLineBufferIsLegal(t *testing.T) {
	tr, err := Init([]byte("solo"))
	require.NoError(t, err)
	defer tr.Deinit()

	require.NoError(t, tr.InsertAfter(0))
	assert.Equal(t, 2, tr.Len())
	assertTreeInvariants(t, tr)
}

func TestInsertAfter_OutOfBound(t *testing.T) {
	tr, err := Init([]byte("a\nb\n"))
	require.NoError(t, err)
	defer tr.Deinit()

	assert.ErrorIs(t, tr.InsertAfter(-1), ErrIndexOutOfBound)
	assert.ErrorIs(t, tr.InsertAfter(tr.Len()), ErrIndexOutOfBound)
}

func TestInsertAfter_ManyKeepsBalance(t *testing.T) {
	tr, err := Init([]byte("a\nb\n"))
	require.NoError(t, err)
	defer tr.Deinit()

	for i := 0; i < 200; i++ {
		require.NoError(t, tr.InsertAfter(0))
	}
	assert.Equal(t, 203, tr.Len())
	assertTreeInvariants(t, tr)
}

func TestInsertAfter_ThenRemove_IsIdentity(t *testing.T) {
	tr, err := Init([]byte("\nzig\nc\nrust\ncpp\n"))
	require.NoError(t, err)
	defer tr.Deinit()

	before := getAll(t, tr)
	require.NoError(t, tr.InsertAfter(2))
	require.NoError(t, tr.Remove(3))

	assert.Equal(t, before, getAll(t, tr))
	assertTreeInvariants(t, tr)
}
