package renderer

import (
	"flag"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumascope/lumascope/options"
)

func recordOptions(t *testing.T, args ...string) *options.Options {
	t.Helper()
	fs := flag.NewFlagSet("lumascope", flag.ContinueOnError)
	opts := options.Register(fs)
	require.NoError(t, fs.Parse(args))
	require.NoError(t, opts.Validate())
	return opts
}

// A dead encoder must not stall the render loop: every frame send completes
// and the encode error comes back on doneChan.
func TestRunEncoderFailureDoesNotBlockProducer(t *testing.T) {
	dir := t.TempDir()
	opts := recordOptions(t,
		"-record",
		"-width", "8", "-height", "8",
		"-fps", "30", "-duration", "1",
		"-output", filepath.Join(dir, "out.mp4"),
		"-ffmpeg", filepath.Join(dir, "missing-ffmpeg"),
	)

	r := &Renderer{width: 8, height: 8}
	frameChan := make(chan *Frame, frameChanDepth)
	doneChan := make(chan error, 1)

	go r.runEncoder(opts, frameChan, doneChan)

	pixels := make([]byte, 8*8*4)
	for i := 0; i < frameChanDepth*4; i++ {
		select {
		case frameChan <- &Frame{Pixels: pixels, PTS: int64(i)}:
		case <-time.After(5 * time.Second):
			t.Fatal("frame send blocked after encoder failure")
		}
	}
	close(frameChan)

	select {
	case err := <-doneChan:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("encoder never reported its failure")
	}
}
