package pong

type GameState int

const (
	StateIntro    GameState = iota // title screen, any key starts
	StatePlaying                   // match running
	StateGameOver                  // waiting for restart or exit
)

func (s GameState) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// KeySpecial stands for a key press with no character, such as an arrow,
// function or modifier key. It starts the game from the intro screen and is
// ignored everywhere else.
const KeySpecial rune = -1

// Session drives a Match at a fixed tick rate and owns the screen flow
// around it.
type Session struct {
	State GameState
	Match *Match
	Quit  bool

	tick        float64
	accumulator float64
	bus         *EventBus
}

// NewSession returns a session on the intro screen, or already playing when
// settings.SkipIntro is set. bus may be nil.
func NewSession(settings Settings, bus *EventBus) *Session {
	rate := settings.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	s := &Session{
		State: StateIntro,
		Match: NewMatch(settings.WinScore, bus),
		tick:  1.0 / float64(rate),
		bus:   bus,
	}
	if settings.SkipIntro {
		s.State = StatePlaying
	}
	return s
}

// TickDuration returns the length of one match step in seconds.
func (s *Session) TickDuration() float64 { return s.tick }

// Advance consumes dt seconds of wall-clock time and returns how many match
// steps ran. Time beyond MaxStepsPerFrame ticks is dropped.
func (s *Session) Advance(dt float64) int {
	if s.State != StatePlaying || dt <= 0 {
		s.accumulator = 0
		return 0
	}
	s.accumulator += dt
	steps := 0
	for s.accumulator >= s.tick && steps < MaxStepsPerFrame {
		s.Match.Step()
		s.accumulator -= s.tick
		steps++
		if s.Match.GameOver {
			s.State = StateGameOver
			s.accumulator = 0
			break
		}
	}
	if s.accumulator >= s.tick {
		s.accumulator = 0
	}
	return steps
}

// MouseMoved forwards the cursor's logical y to the player paddle.
func (s *Session) MouseMoved(y int) {
	s.Match.MovePlayerPaddle(y)
}

// KeyPressed routes a key press according to the current state.
func (s *Session) KeyPressed(key rune) {
	switch s.State {
	case StateIntro:
		s.State = StatePlaying
		s.accumulator = 0
		s.bus.Emit(Event{Type: EventRestart})
	case StateGameOver:
		if key == KeySpecial {
			return
		}
		switch s.Match.HandleKey(key) {
		case KeyRestart:
			s.State = StatePlaying
			s.accumulator = 0
		case KeyExit:
			s.Quit = true
		}
	}
}
