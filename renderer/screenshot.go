package renderer

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// RequestScreenshot asks the frame loop to save the next rendered frame.
// It is called from the key callback, which fires on the GL thread during
// event polling, so no locking is needed.
func (r *Renderer) RequestScreenshot() {
	r.screenshotRequest = true
}

// saveScreenshot reads the default framebuffer back and encodes it to a
// numbered PNG in the working directory. Runs after the draw and before the
// buffer swap, so it captures the frame just rendered.
func (r *Renderer) saveScreenshot() error {
	width, height := r.context.GetFramebufferSize()

	raw := make([]byte, width*height*4)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(raw))

	img := &image.NRGBA{
		Pix:    flipRows(raw, width, height),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	r.screenshotSequence++
	name := fmt.Sprintf("lumascope_%04d.png", r.screenshotSequence)

	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return err
	}

	log.Printf("Saved %s", name)
	return nil
}
