package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDerivedLayoutConstants(t *testing.T) {
	assert.Equal(t, 240, GoalTop)
	assert.Equal(t, 840, GoalBottom)
	assert.Equal(t, 972, ScoreRowY)
	assert.Equal(t, 1800, PlayerScoreX)
	assert.Equal(t, 98, AIScoreX)
	assert.Equal(t, 25, MaxWinScore)
}

func TestLoadSettingsWinScoreUpperBound(t *testing.T) {
	s, err := LoadSettings(envFrom(map[string]string{"PONG_WIN_SCORE": "25"}))
	require.NoError(t, err)
	assert.Equal(t, MaxWinScore, s.WinScore)

	s, err = LoadSettings(envFrom(map[string]string{"PONG_WIN_SCORE": "26"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside 1..25")
	assert.Equal(t, DefaultWinScore, s.WinScore)
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(envFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)

	w, h := s.WindowSize()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
}

func TestLoadSettingsOverrides(t *testing.T) {
	s, err := LoadSettings(envFrom(map[string]string{
		"PONG_WIN_SCORE":    "5",
		"PONG_TICK_RATE":    "120",
		"PONG_WINDOW_SCALE": "0.5",
		"PONG_MUTE":         "true",
		"PONG_SKIP_INTRO":   "1",
	}))
	require.NoError(t, err)
	assert.Equal(t, Settings{WinScore: 5, TickRate: 120, WindowScale: 0.5, Mute: true, SkipIntro: true}, s)
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PONG_WIN_SCORE", "nine"},
		{"PONG_WIN_SCORE", "0"},
		{"PONG_WIN_SCORE", "60"},
		{"PONG_TICK_RATE", "5"},
		{"PONG_TICK_RATE", "fast"},
		{"PONG_WINDOW_SCALE", "3"},
		{"PONG_WINDOW_SCALE", "big"},
		{"PONG_MUTE", "maybe"},
		{"PONG_SKIP_INTRO", "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			_, err := LoadSettings(envFrom(map[string]string{tt.key: tt.value}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadSettingsKeepsValuesParsedBeforeError(t *testing.T) {
	s, err := LoadSettings(envFrom(map[string]string{
		"PONG_WIN_SCORE": "4",
		"PONG_MUTE":      "loud",
	}))
	require.Error(t, err)
	assert.Equal(t, 4, s.WinScore)
	assert.False(t, s.Mute)
}
