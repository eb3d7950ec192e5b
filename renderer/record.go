package renderer

import (
	"fmt"
	"io"
	"log"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/lumascope/lumascope/options"
)

// Frame is one rendered frame's pixel data, ready for encoding.
type Frame struct {
	Pixels []byte
	PTS    int64
}

const frameChanDepth = 3

// frameTime returns the simulated animation time of frame i at the given
// frame rate. Recording uses a fixed clock so the output is deterministic
// regardless of how fast frames render.
func frameTime(i, fps int) float64 {
	return float64(i) / float64(fps)
}

// RunOffscreen renders duration*fps frames into the offscreen framebuffer
// and streams them to the encoder goroutine. The producer runs on the GL
// thread; the consumer owns the ffmpeg pipe.
func (r *Renderer) RunOffscreen(opts *options.Options) error {
	if r.offscreen == nil {
		return fmt.Errorf("renderer was not created in record mode")
	}

	frameChan := make(chan *Frame, frameChanDepth)
	encoderDoneChan := make(chan error, 1)

	go r.runEncoder(opts, frameChan, encoderDoneChan)

	totalFrames := int(*opts.Duration * float64(*opts.FPS))
	for i := 0; i < totalFrames; i++ {
		r.offscreen.Bind()
		r.RenderFrame(frameTime(i, *opts.FPS))
		pixels := r.offscreen.ReadFrame()
		r.offscreen.Unbind()

		frameChan <- &Frame{Pixels: pixels, PTS: int64(i)}
	}

	close(frameChan)
	return <-encoderDoneChan
}

// runEncoder is the consumer. It pipes raw RGBA frames into ffmpeg and
// reports the encode result on doneChan.
func (r *Renderer) runEncoder(opts *options.Options, frameChan <-chan *Frame, doneChan chan<- error) {
	pipeReader, pipeWriter := io.Pipe()

	inputArgs := ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", r.width, r.height),
		"framerate": *opts.FPS,
	}
	outputArgs := ffmpeg.KwArgs{
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
		"b:v":     "25M",
	}

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*opts.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()

	if *opts.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(*opts.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// Once ffmpeg is gone nothing reads the pipe; closing the read
		// side fails any in-flight or later write instead of blocking it.
		pipeReader.CloseWithError(err)
		errc <- err
	}()

	for frame := range frameChan {
		if _, err := pipeWriter.Write(frame.Pixels); err != nil {
			log.Printf("Error writing frame %d to ffmpeg: %v", frame.PTS, err)
			break
		}
	}

	// Drain remaining frames so the producer on the GL thread never blocks
	// on a send after an encode failure.
	for range frameChan {
	}

	pipeWriter.Close()
	doneChan <- <-errc
}
