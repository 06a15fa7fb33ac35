package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBusDispatchesByType(t *testing.T) {
	bus := NewEventBus()
	var goals, posts []Event
	bus.Subscribe(EventGoal, func(e Event) { goals = append(goals, e) })
	bus.Subscribe(EventGoal, func(e Event) { goals = append(goals, e) })
	bus.Subscribe(EventGoalPost, func(e Event) { posts = append(posts, e) })

	bus.Emit(Event{Type: EventGoal, Side: SideAI})
	bus.Emit(Event{Type: EventWallBounce})

	assert.Len(t, goals, 2)
	assert.Equal(t, SideAI, goals[0].Side)
	assert.Empty(t, posts)
}

func TestNilEventBusDropsEvents(t *testing.T) {
	var bus *EventBus
	assert.NotPanics(t, func() { bus.Emit(Event{Type: EventGoal}) })
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "player", SidePlayer.String())
	assert.Equal(t, "ai", SideAI.String())
}
