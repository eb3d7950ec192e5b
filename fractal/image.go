package fractal

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Image adapts the fractal field to image.Image so a frame can be encoded
// with the standard codecs. Pixels are shaded lazily in At; y is flipped so
// the encoded image matches what the GPU presents on screen.
type Image struct {
	Width   int
	Height  int
	Elapsed float32
}

func (m *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

func (m *Image) At(x, y int) color.Color {
	frag := mgl32.Vec2{
		float32(x) + 0.5,
		float32(m.Height-1-y) + 0.5,
	}
	res := mgl32.Vec2{float32(m.Width), float32(m.Height)}

	c := Shade(frag, res, m.Elapsed)
	return color.NRGBA{
		R: channelByte(c.X()),
		G: channelByte(c.Y()),
		B: channelByte(c.Z()),
		A: 0xff,
	}
}

func (m *Image) Opaque() bool {
	return true
}

// channelByte clamps an additive channel into [0,1] and quantizes it.
func channelByte(v float32) uint8 {
	v = math32.Min(math32.Max(v, 0), 1)
	return uint8(v * 255)
}

// SavePoster shades a single frame at the given time and writes it to a PNG
// file. It needs no graphics context.
func SavePoster(name string, width, height int, elapsed float32) error {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create poster file: %w", err)
	}
	defer file.Close()

	img := &Image{Width: width, Height: height, Elapsed: elapsed}
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode poster: %w", err)
	}
	return nil
}
