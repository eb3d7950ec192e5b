// Package fractal is a CPU implementation of the same layered fractal
// coloring the fragment shader computes on the GPU. It backs poster
// rendering, which needs no GL context, and gives the shader formula a
// testable ground truth.
package fractal

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	iterations = 4
	foldScale  = 1.5
	foldOffset = 0.5
	stepTime   = 0.4
	globalTime = 0.4
	ringFreq   = 8.0
	glowDiv    = 0.005
	glowExp    = 1.2
	tau        = 6.28318
)

var (
	paletteA = mgl32.Vec3{0.5, 0.5, 0.5}
	paletteB = mgl32.Vec3{0.5, 0.5, 0.5}
	paletteC = mgl32.Vec3{1.0, 1.0, 1.0}
	paletteD = mgl32.Vec3{0.263, 0.416, 0.557}
)

// Palette is the cosine color ramp a + b*cos(tau*(c*t + d)). With the
// constants above every channel stays within [0,1] for any t, and the ramp
// repeats with period 1.
func Palette(t float32) mgl32.Vec3 {
	var out mgl32.Vec3
	for i := 0; i < 3; i++ {
		out[i] = paletteA[i] + paletteB[i]*math32.Cos(tau*(paletteC[i]*t+paletteD[i]))
	}
	return out
}

func fract(x float32) float32 {
	return x - math32.Floor(x)
}

// Shade evaluates the fractal field for one pixel. frag is the pixel-center
// coordinate with the origin at the bottom left, res the surface size in
// pixels, elapsed the animation time in seconds. The result is an
// unclamped additive color; Shade never returns a negative channel.
func Shade(frag, res mgl32.Vec2, elapsed float32) mgl32.Vec3 {
	short := math32.Min(res.X(), res.Y())
	uv := mgl32.Vec2{
		(frag.X()*2 - res.X()) / short,
		(frag.Y()*2 - res.Y()) / short,
	}
	uv0 := uv

	var finalColor mgl32.Vec3
	for i := 0; i < iterations; i++ {
		uv = mgl32.Vec2{
			fract(uv.X()*foldScale) - foldOffset,
			fract(uv.Y()*foldScale) - foldOffset,
		}

		d := uv.Len() * math32.Exp(-uv0.Len())

		col := Palette(uv0.Len() + float32(i)*stepTime + elapsed*globalTime)

		d = math32.Sin(d*ringFreq+elapsed) / ringFreq
		d = math32.Abs(d)
		d = math32.Pow(glowDiv/d, glowExp)

		finalColor = finalColor.Add(col.Mul(d))
	}

	return finalColor
}
