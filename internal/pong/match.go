package pong

import "image"

// Side identifies a paddle and the player behind it.
type Side int

const (
	SidePlayer Side = iota // right paddle, follows the mouse
	SideAI                 // left paddle
)

func (s Side) String() string {
	if s == SideAI {
		return "ai"
	}
	return "player"
}

// KeyAction is what a key press asks of the program.
type KeyAction int

const (
	KeyIgnored KeyAction = iota
	KeyRestart
	KeyExit
)

var (
	initialBallPosition  = image.Pt(ScreenWidth/2, ScreenHeight/2)
	initialBallDirection = image.Pt(1, 1)
)

// Match holds the complete state of one game. Positions are the top-left
// corners of the paddles and the ball.
type Match struct {
	PlayerPaddle image.Point
	AIPaddle     image.Point
	PlayerScore  int
	AIScore      int
	Ball         image.Point
	BallSpeed    int
	BallDir      image.Point
	LastScore    Side
	GameOver     bool
	WinScore     int

	bus *EventBus
}

// NewMatch returns a match ready to serve. bus may be nil. A win score
// below 1 falls back to the default; one above MaxWinScore is capped.
func NewMatch(winScore int, bus *EventBus) *Match {
	if winScore < 1 {
		winScore = DefaultWinScore
	}
	if winScore > MaxWinScore {
		winScore = MaxWinScore
	}
	m := &Match{WinScore: winScore, bus: bus}
	m.Reset()
	return m
}

// Reset puts every field back to its start-of-game value.
func (m *Match) Reset() {
	m.PlayerPaddle = image.Pt(ScreenWidth-PaddleOffset-PaddleWidth, ScreenHeight/2-PaddleLength/2)
	m.AIPaddle = image.Pt(PaddleOffset, ScreenHeight/2-PaddleLength/2)
	m.PlayerScore = 0
	m.AIScore = 0
	m.Ball = initialBallPosition
	m.BallSpeed = InitialBallSpeed
	m.BallDir = initialBallDirection
	m.LastScore = SidePlayer
	m.GameOver = false
}

// ResetBall serves from the centre toward the side that did not score last.
func (m *Match) ResetBall() {
	m.Ball = initialBallPosition
	if m.LastScore == SidePlayer {
		m.BallDir = image.Pt(-initialBallDirection.X, initialBallDirection.Y)
	} else {
		m.BallDir = initialBallDirection
	}
	m.BallSpeed = InitialBallSpeed
}

// Step advances the match by one tick.
func (m *Match) Step() {
	if m.GameOver {
		return
	}
	if m.PlayerScore >= m.WinScore || m.AIScore >= m.WinScore {
		m.GameOver = true
		m.emit(EventGameOver, m.Leader(), 0)
		return
	}
	m.UpdateBall()
	m.UpdateAI()
}

// Leader returns the side with more points, the player on a tie.
func (m *Match) Leader() Side {
	if m.AIScore > m.PlayerScore {
		return SideAI
	}
	return SidePlayer
}

// UpdateBall moves the ball one tick and resolves at most one collision.
func (m *Match) UpdateBall() {
	m.Ball.X += m.BallSpeed * m.BallDir.X
	if m.Ball.X < WallThickness || m.Ball.X > ScreenWidth-WallThickness-BallSize {
		m.resolveGoalColumn()
		return
	}

	m.Ball.Y += m.BallSpeed * m.BallDir.Y
	if m.Ball.Y < WallThickness || m.Ball.Y > ScreenHeight-WallThickness-BallSize {
		m.BallDir.Y = -m.BallDir.Y
		m.emit(EventWallBounce, SidePlayer, 0)
		return
	}

	ball := m.BallRect()
	// Only a ball travelling toward a paddle can be returned by it. A paddle
	// moved onto a ball that is already heading away lets it pass instead of
	// sending it back.
	if m.BallDir.X > 0 && ball.Overlaps(PaddleRect(m.PlayerPaddle)) {
		m.BallDir.X = -m.BallDir.X
		m.emit(EventPaddleHit, SidePlayer, m.BallSpeed)
		return
	}
	if m.BallDir.X < 0 && ball.Overlaps(PaddleRect(m.AIPaddle)) {
		m.BallSpeed += BallSpeedupFactor
		m.BallDir.X = -m.BallDir.X
		m.emit(EventPaddleHit, SideAI, m.BallSpeed)
	}
}

// resolveGoalColumn handles a ball past the left or right wall line:
// it either hits a goal post or enters the goal mouth.
func (m *Match) resolveGoalColumn() {
	if m.Ball.Y+BallSize >= GoalBottom || m.Ball.Y <= GoalTop {
		m.BallDir.X = -m.BallDir.X
		m.emit(EventGoalPost, SidePlayer, 0)
		return
	}

	if m.BallDir.X > 0 {
		m.AIScore++
		m.LastScore = SideAI
	} else {
		m.PlayerScore++
		m.LastScore = SidePlayer
	}
	m.emit(EventGoal, m.LastScore, 0)
	m.ResetBall()
}

// UpdateAI tracks the ball vertically while it is in the AI's half.
func (m *Match) UpdateAI() {
	if m.Ball.X >= ScreenWidth/2 {
		return
	}
	switch {
	case m.Ball.Y < m.AIPaddle.Y:
		m.AIPaddle.Y -= AIPaddleSpeed
	case m.Ball.Y > m.AIPaddle.Y:
		m.AIPaddle.Y += AIPaddleSpeed
	}
	m.AIPaddle.Y = clampPaddle(m.AIPaddle.Y)
}

// MovePlayerPaddle centres the player paddle on the cursor's y.
func (m *Match) MovePlayerPaddle(y int) {
	m.PlayerPaddle.Y = clampPaddle(y - PaddleLength/2)
}

// HandleKey applies a key press. Keys only matter once the match is over:
// 'r' starts a new match and anything else asks to exit.
func (m *Match) HandleKey(key rune) KeyAction {
	if !m.GameOver {
		return KeyIgnored
	}
	if key == 'r' || key == 'R' {
		m.Reset()
		m.emit(EventRestart, SidePlayer, 0)
		return KeyRestart
	}
	return KeyExit
}

func (m *Match) BallRect() image.Rectangle {
	return image.Rectangle{Min: m.Ball, Max: m.Ball.Add(image.Pt(BallSize, BallSize))}
}

func PaddleRect(p image.Point) image.Rectangle {
	return image.Rectangle{Min: p, Max: p.Add(image.Pt(PaddleWidth, PaddleLength))}
}

func (m *Match) emit(t EventType, side Side, data int) {
	m.bus.Emit(Event{Type: t, X: m.Ball.X, Y: m.Ball.Y, Side: side, Data: data})
}

func clampPaddle(y int) int {
	if y < 0 {
		return 0
	}
	if y > ScreenHeight-PaddleLength {
		return ScreenHeight - PaddleLength
	}
	return y
}
