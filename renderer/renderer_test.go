package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimInfoLog(t *testing.T) {
	assert.Equal(t, "ERROR: 0:12: syntax error", trimInfoLog("ERROR: 0:12: syntax error\x00\x00\x00"))
	assert.Equal(t, "", trimInfoLog("\x00\x00"))
	assert.Equal(t, "no padding", trimInfoLog("no padding"))
}
