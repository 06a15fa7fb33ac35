package pong

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendFieldFreshMatch(t *testing.T) {
	m := NewMatch(DefaultWinScore, nil)
	quads := AppendField(nil, m)

	require.Len(t, quads, len(wallQuads)+3)
	assert.Equal(t, Quad{image.Rect(1760, 440, 1800, 640), Palette.Paddle}, quads[6])
	assert.Equal(t, Quad{image.Rect(120, 440, 160, 640), Palette.Paddle}, quads[7])
	assert.Equal(t, Quad{image.Rect(960, 540, 990, 570), Palette.Paddle}, quads[8])
}

func TestAppendFieldScoreMarkers(t *testing.T) {
	m := NewMatch(DefaultWinScore, nil)
	m.PlayerScore = 2
	m.AIScore = 3
	quads := AppendField(nil, m)

	require.Len(t, quads, len(wallQuads)+3+5)
	scores := quads[len(wallQuads)+3:]
	assert.Equal(t, []Quad{
		{image.Rect(1778, 972, 1800, 994), Palette.PlayerScore},
		{image.Rect(1706, 972, 1728, 994), Palette.PlayerScore},
		{image.Rect(98, 972, 120, 994), Palette.AIScore},
		{image.Rect(170, 972, 192, 994), Palette.AIScore},
		{image.Rect(242, 972, 264, 994), Palette.AIScore},
	}, scores)
}

func TestAppendFieldMaxScoresStayOnField(t *testing.T) {
	m := NewMatch(MaxWinScore, nil)
	m.PlayerScore = m.WinScore
	m.AIScore = m.WinScore
	quads := AppendField(nil, m)

	require.Len(t, quads, MaxFieldQuads)
	field := image.Rect(0, 0, ScreenWidth, ScreenHeight)
	for _, q := range quads {
		assert.True(t, q.Rect.In(field), "quad %v off the field", q.Rect)
	}
}

func TestAppendFieldReusesBuffer(t *testing.T) {
	m := NewMatch(DefaultWinScore, nil)
	buf := make([]Quad, 0, 32)
	out := AppendField(buf[:0], m)
	assert.Same(t, &buf[:1][0], &out[0])
}

func TestWallsLeaveGoalMouthsOpen(t *testing.T) {
	mouths := []image.Rectangle{
		image.Rect(0, GoalTop+1, WallThickness, GoalBottom-1),
		image.Rect(ScreenWidth-WallThickness, GoalTop+1, ScreenWidth, GoalBottom-1),
	}
	for _, q := range wallQuads {
		assert.Equal(t, Palette.Wall, q.Color)
		for _, mouth := range mouths {
			assert.False(t, q.Rect.Overlaps(mouth), "wall %v blocks goal mouth %v", q.Rect, mouth)
		}
	}
}

func TestOverlay(t *testing.T) {
	s := NewSession(testSettings(), nil)

	intro := Overlay(s)
	require.Len(t, intro, 2)
	assert.Equal(t, "PONG", intro[0].Text)
	assert.Equal(t, "Press any key to start!", intro[1].Text)

	s.KeyPressed(' ')
	assert.Empty(t, Overlay(s))

	s.Match.AIScore = s.Match.WinScore
	s.Advance(s.TickDuration())
	over := Overlay(s)
	require.Len(t, over, 2)
	assert.Equal(t, "The computer wins.", over[0].Text)
	assert.Equal(t, "End of Game! Press any key to end or r to restart.", over[1].Text)
}
