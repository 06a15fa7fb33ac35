package pong

import "image"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

var Palette = struct {
	Background  RGB
	Wall        RGB
	Paddle      RGB
	PlayerScore RGB
	AIScore     RGB
	Text        RGB
	Title       RGB
}{
	Background:  RGB{0, 0, 0},
	Wall:        RGB{255, 0, 0},
	Paddle:      RGB{255, 255, 255},
	PlayerScore: RGB{0, 255, 0},
	AIScore:     RGB{255, 0, 0},
	Text:        RGB{255, 255, 255},
	Title:       RGB{255, 128, 51},
}

// Quad is a filled axis-aligned rectangle in field pixels.
type Quad struct {
	Rect  image.Rectangle
	Color RGB
}

// TextLine is a line of overlay text, horizontally centred on the field.
// Y is the top of the line and Scale multiplies the font's pixel size.
type TextLine struct {
	Text  string
	Y     int
	Scale int
	Color RGB
}

// MaxFieldQuads bounds AppendField's output: six walls, two paddles, the
// ball and up to MaxWinScore markers per side.
const MaxFieldQuads = 6 + 3 + 2*MaxWinScore

// wallQuads are static: two full-width walls and the side walls broken by
// the goal mouths.
var wallQuads = []Quad{
	{image.Rect(0, 0, ScreenWidth, WallThickness), Palette.Wall},
	{image.Rect(0, ScreenHeight-WallThickness, ScreenWidth, ScreenHeight), Palette.Wall},
	{image.Rect(0, 0, WallThickness, GoalTop), Palette.Wall},
	{image.Rect(0, GoalBottom, WallThickness, ScreenHeight), Palette.Wall},
	{image.Rect(ScreenWidth-WallThickness, 0, ScreenWidth, GoalTop), Palette.Wall},
	{image.Rect(ScreenWidth-WallThickness, GoalBottom, ScreenWidth, ScreenHeight), Palette.Wall},
}

// AppendField appends the quads for the walls, paddles, ball and score
// markers of m to buf and returns the extended slice.
func AppendField(buf []Quad, m *Match) []Quad {
	buf = append(buf, wallQuads...)
	buf = append(buf,
		Quad{PaddleRect(m.PlayerPaddle), Palette.Paddle},
		Quad{PaddleRect(m.AIPaddle), Palette.Paddle},
		Quad{m.BallRect(), Palette.Paddle},
	)

	// Player points run leftward from the right edge, AI points rightward.
	for i := 0; i < m.PlayerScore; i++ {
		x := PlayerScoreX - i*(ScoreSize+ScoreGap)
		buf = append(buf, Quad{image.Rect(x-ScoreSize, ScoreRowY, x, ScoreRowY+ScoreSize), Palette.PlayerScore})
	}
	for i := 0; i < m.AIScore; i++ {
		x := AIScoreX + i*(ScoreSize+ScoreGap)
		buf = append(buf, Quad{image.Rect(x, ScoreRowY, x+ScoreSize, ScoreRowY+ScoreSize), Palette.AIScore})
	}
	return buf
}

// Overlay returns the text lines shown over the field in the session's state.
func Overlay(s *Session) []TextLine {
	switch s.State {
	case StateIntro:
		return []TextLine{
			{Text: "PONG", Y: ScreenHeight / 5, Scale: 12, Color: Palette.Title},
			{Text: "Press any key to start!", Y: ScreenHeight / 5 * 2, Scale: 4, Color: Palette.Text},
		}
	case StateGameOver:
		winner := "You win!"
		if s.Match.Leader() == SideAI {
			winner = "The computer wins."
		}
		return []TextLine{
			{Text: winner, Y: ScreenHeight / 4, Scale: 5, Color: Palette.Text},
			{Text: "End of Game! Press any key to end or r to restart.", Y: ScreenHeight/4 + 100, Scale: 3, Color: Palette.Text},
		}
	}
	return nil
}
