package pong

import (
	"fmt"
	"math"
	"strconv"
)

// Field dimensions (in logical pixels, origin top-left).
const (
	ScreenWidth  = 1920
	ScreenHeight = 1080
)

// Paddle layout.
const (
	PaddleOffset = 120
	PaddleWidth  = 40
	PaddleLength = 200
)

// Ball.
const (
	BallSize          = 30
	InitialBallSpeed  = 5 // pixels per tick
	BallSpeedupFactor = 1
)

// AI paddle speed in pixels per tick.
const AIPaddleSpeed = 5

// Walls and goal mouths. The goal mouth is three paddle lengths tall.
const (
	WallThickness = 10
	GoalTop       = ScreenHeight/2 - 3*PaddleLength/2 // 240
	GoalBottom    = ScreenHeight/2 + 3*PaddleLength/2 // 840
)

// Score markers.
const (
	ScoreSize    = 22
	ScoreGap     = 50
	ScoreRowY    = ScreenHeight * 9 / 10 // 972
	PlayerScoreX = ScreenWidth - PaddleOffset
	AIScoreX     = PaddleOffset - ScoreSize
)

// MaxWinScore is the most score markers that fit on one side of the row.
const MaxWinScore = (PlayerScoreX-ScoreSize)/(ScoreSize+ScoreGap) + 1 // 25

// Match and timing defaults.
const (
	DefaultWinScore    = 9
	DefaultTickRate    = 60
	MaxStepsPerFrame   = 5
	DefaultWindowScale = 2.0 / 3.0 // 1280x720
)

// Settings are the runtime tunables that may be overridden from the environment.
type Settings struct {
	WinScore    int
	TickRate    int
	WindowScale float64
	Mute        bool
	SkipIntro   bool
}

// DefaultSettings returns the settings used when no override is set.
func DefaultSettings() Settings {
	return Settings{
		WinScore:    DefaultWinScore,
		TickRate:    DefaultTickRate,
		WindowScale: DefaultWindowScale,
	}
}

// LoadSettings applies PONG_* overrides read through getenv on top of the defaults.
// On error the returned settings hold every value parsed before the failure.
func LoadSettings(getenv func(string) string) (Settings, error) {
	s := DefaultSettings()

	if v := getenv("PONG_WIN_SCORE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("PONG_WIN_SCORE: %w", err)
		}
		if n < 1 || n > MaxWinScore {
			return s, fmt.Errorf("PONG_WIN_SCORE: %d outside 1..%d", n, MaxWinScore)
		}
		s.WinScore = n
	}

	if v := getenv("PONG_TICK_RATE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("PONG_TICK_RATE: %w", err)
		}
		if n < 10 || n > 1000 {
			return s, fmt.Errorf("PONG_TICK_RATE: %d outside 10..1000", n)
		}
		s.TickRate = n
	}

	if v := getenv("PONG_WINDOW_SCALE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return s, fmt.Errorf("PONG_WINDOW_SCALE: %w", err)
		}
		if f < 0.1 || f > 2 {
			return s, fmt.Errorf("PONG_WINDOW_SCALE: %g outside 0.1..2", f)
		}
		s.WindowScale = f
	}

	if v := getenv("PONG_MUTE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("PONG_MUTE: %w", err)
		}
		s.Mute = b
	}

	if v := getenv("PONG_SKIP_INTRO"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("PONG_SKIP_INTRO: %w", err)
		}
		s.SkipIntro = b
	}

	return s, nil
}

// WindowSize returns the window size in screen coordinates for a scale factor.
func (s Settings) WindowSize() (int, int) {
	return int(math.Round(ScreenWidth * s.WindowScale)), int(math.Round(ScreenHeight * s.WindowScale))
}
