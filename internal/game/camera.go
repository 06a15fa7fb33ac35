package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"pong/internal/pong"
)

// Camera looks at the whole field and only moves to shake it.
type Camera struct {
	ShakeX, ShakeY float64 // current offset in field pixels
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// Projection returns the field projection with the shake offset applied.
func (c *Camera) Projection() mgl32.Mat4 {
	return FieldProjection(float32(c.ShakeX), float32(c.ShakeY))
}

// BindShake shakes the field on goals and goal-post hits.
func BindShake(c *Camera, bus *pong.EventBus) {
	bus.Subscribe(pong.EventGoal, func(pong.Event) {
		c.AddShake(14, 0.35)
	})
	bus.Subscribe(pong.EventGoalPost, func(pong.Event) {
		c.AddShake(5, 0.15)
	})
}
