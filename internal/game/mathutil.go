package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"pong/internal/pong"
)

// PixelToScreenX maps a field pixel column to normalised device x.
func PixelToScreenX(x int) float32 {
	return 2.0*float32(x)/float32(pong.ScreenWidth-1) - 1.0
}

// PixelToScreenY maps a field pixel row to normalised device y (y grows up).
func PixelToScreenY(y int) float32 {
	return -(2.0*float32(y)/float32(pong.ScreenHeight-1) - 1.0)
}

// FieldProjection is the matrix form of PixelToScreenX/Y, shifted by
// (dx, dy) field pixels.
func FieldProjection(dx, dy float32) mgl32.Mat4 {
	return mgl32.Ortho2D(dx, dx+pong.ScreenWidth-1, dy+pong.ScreenHeight-1, dy)
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}
