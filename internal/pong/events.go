package pong

type EventType int

// Paddle hits carry the paddle owner in Side and the ball speed after the
// hit in Data. Goals carry the scorer, game over carries the winner.
const (
	EventWallBounce EventType = iota
	EventPaddleHit
	EventGoalPost
	EventGoal
	EventGameOver
	EventRestart
)

type Event struct {
	Type EventType
	X, Y int // ball position when the event fired
	Side Side
	Data int
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

// NewEventBus returns a bus with no subscribers.
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers fn for events of type t, after any earlier handlers.
func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// Emit runs the handlers for e.Type synchronously. A nil bus drops the event.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
