package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pong/internal/pong"
)

func TestAddShakeKeepsStrongest(t *testing.T) {
	var c Camera
	c.AddShake(10, 0.2)
	c.AddShake(4, 0.5)

	assert.Equal(t, 10.0, c.ShakeIntensity)
	assert.Equal(t, 0.5, c.ShakeTimer)
}

func TestUpdateShakeDecaysToRest(t *testing.T) {
	var c Camera
	c.AddShake(8, 0.1)

	c.UpdateShake(0.05, 7)
	assert.LessOrEqual(t, c.ShakeX, 8.0)
	assert.GreaterOrEqual(t, c.ShakeX, -8.0)
	assert.LessOrEqual(t, c.ShakeY, 8.0)
	assert.GreaterOrEqual(t, c.ShakeY, -8.0)

	for i := 0; i < 10; i++ {
		c.UpdateShake(0.05, 7)
	}
	assert.Zero(t, c.ShakeX)
	assert.Zero(t, c.ShakeY)
	assert.Zero(t, c.ShakeIntensity)
	assert.Equal(t, FieldProjection(0, 0), c.Projection())
}

func TestBindShakeOnGoals(t *testing.T) {
	var c Camera
	bus := pong.NewEventBus()
	BindShake(&c, bus)

	bus.Emit(pong.Event{Type: pong.EventWallBounce})
	assert.Zero(t, c.ShakeTimer)

	bus.Emit(pong.Event{Type: pong.EventGoalPost})
	assert.Equal(t, 5.0, c.ShakeIntensity)

	bus.Emit(pong.Event{Type: pong.EventGoal, Side: pong.SideAI})
	assert.Equal(t, 14.0, c.ShakeIntensity)
	assert.Equal(t, 0.35, c.ShakeTimer)
}
