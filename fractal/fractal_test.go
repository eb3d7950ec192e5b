package fractal

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteStaysInUnitRange(t *testing.T) {
	for i := -200; i <= 200; i++ {
		c := Palette(float32(i) * 0.05)
		for ch := 0; ch < 3; ch++ {
			assert.GreaterOrEqual(t, c[ch], float32(0))
			assert.LessOrEqual(t, c[ch], float32(1))
		}
	}
}

func TestPalettePeriodIsOne(t *testing.T) {
	for i := 0; i < 20; i++ {
		tt := float32(i) * 0.13
		a := Palette(tt)
		b := Palette(tt + 1)
		for ch := 0; ch < 3; ch++ {
			assert.InDelta(t, a[ch], b[ch], 1e-4)
		}
	}
}

func TestPalettePhaseOffsetsDiffer(t *testing.T) {
	// The d vector phase-shifts the channels, so a generic sample must not
	// come out gray.
	c := Palette(0.1)
	assert.NotEqual(t, c.X(), c.Y())
	assert.NotEqual(t, c.Y(), c.Z())
}

func TestShadeIsDeterministic(t *testing.T) {
	frag := mgl32.Vec2{123.5, 456.5}
	res := mgl32.Vec2{800, 600}

	a := Shade(frag, res, 2.5)
	b := Shade(frag, res, 2.5)
	assert.Equal(t, a, b)
}

func TestShadeNeverNegative(t *testing.T) {
	res := mgl32.Vec2{320, 200}
	for y := 0; y < 200; y += 13 {
		for x := 0; x < 320; x += 17 {
			frag := mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5}
			c := Shade(frag, res, 1.75)
			for ch := 0; ch < 3; ch++ {
				assert.GreaterOrEqual(t, c[ch], float32(0), "pixel %d,%d", x, y)
			}
		}
	}
}

func TestShadeVariesWithTime(t *testing.T) {
	frag := mgl32.Vec2{101.5, 77.5}
	res := mgl32.Vec2{640, 480}

	a := Shade(frag, res, 0)
	b := Shade(frag, res, 1)
	assert.NotEqual(t, a, b)
}

func TestShadeAspectCorrection(t *testing.T) {
	// On a wide surface the normalized space is centered: the two pixels
	// mirrored around the center column shade identically up to the x fold
	// symmetry of the field at time 0 only when their uv radii agree. Check
	// the weaker, always-true property that the exact center of any surface
	// maps to uv (0,0) regardless of aspect, so two different aspect ratios
	// agree there.
	a := Shade(mgl32.Vec2{400, 300}, mgl32.Vec2{800, 600}, 3)
	b := Shade(mgl32.Vec2{960, 300}, mgl32.Vec2{1920, 600}, 3)
	for ch := 0; ch < 3; ch++ {
		assert.InDelta(t, a[ch], b[ch], 1e-4)
	}
}

func TestImageBoundsAndOpacity(t *testing.T) {
	img := &Image{Width: 64, Height: 48, Elapsed: 1}

	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
	assert.True(t, img.Opaque())
	assert.Equal(t, color.NRGBAModel, img.ColorModel())
}

func TestImagePixelsAreOpaqueNRGBA(t *testing.T) {
	img := &Image{Width: 16, Height: 16, Elapsed: 0.5}

	for y := 0; y < 16; y += 5 {
		for x := 0; x < 16; x += 5 {
			c, ok := img.At(x, y).(color.NRGBA)
			require.True(t, ok)
			assert.Equal(t, uint8(0xff), c.A)
		}
	}
}

func TestChannelByteClamps(t *testing.T) {
	assert.Equal(t, uint8(0), channelByte(-3))
	assert.Equal(t, uint8(0), channelByte(0))
	assert.Equal(t, uint8(255), channelByte(1))
	assert.Equal(t, uint8(255), channelByte(12.7))
}

func TestSavePoster(t *testing.T) {
	name := t.TempDir() + "/poster.png"
	require.NoError(t, SavePoster(name, 32, 24, 2))

	file, err := os.Open(name)
	require.NoError(t, err)
	defer file.Close()

	cfg, err := png.DecodeConfig(file)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 24, cfg.Height)
}
