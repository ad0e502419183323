package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_YieldsInAscendingOrder(t *testing.T) {
	tr, err := Init([]byte("\nzig\nc\nrust\ncpp\n"))
	require.NoError(t, err)
	defer tr.Deinit()

	var lnums []int
	var offs []int64
	tr.Lines()(func(lnum int, off int64) bool {
		lnums = append(lnums, lnum)
		offs = append(offs, off)
		return true
	})

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, lnums)
	assert.Equal(t, []int64{0, 1, 5, 7, 12, 16}, offs)
}

func TestLines_StopsEarly(t *testing.T) {
	tr, err := Init([]byte("\nzig\nc\nrust\ncpp\n"))
	require.NoError(t, err)
	defer tr.Deinit()

	var seen int
	tr.Lines()(func(lnum int, off int64) bool {
		seen++
		return lnum < 2
	})

	assert.Equal(t, 3, seen)
}
