package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlipRows(t *testing.T) {
	// 2x3 image, one byte marker per pixel channel group.
	width, height := 2, 3
	raw := []byte{
		0, 0, 0, 0, 1, 1, 1, 1, // bottom row
		2, 2, 2, 2, 3, 3, 3, 3,
		4, 4, 4, 4, 5, 5, 5, 5, // top row
	}

	flipped := flipRows(raw, width, height)

	assert.Equal(t, []byte{
		4, 4, 4, 4, 5, 5, 5, 5,
		2, 2, 2, 2, 3, 3, 3, 3,
		0, 0, 0, 0, 1, 1, 1, 1,
	}, flipped)
	// Input is untouched.
	assert.Equal(t, byte(0), raw[0])
}

func TestFlipRowsSingleRow(t *testing.T) {
	raw := []byte{9, 8, 7, 6}
	assert.Equal(t, raw, flipRows(raw, 1, 1))
}
