package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"pong/internal/pong"
)

// Input collects GLFW callbacks between frames. Key presses are queued in
// order; only the latest cursor row is kept.
type Input struct {
	keys    []rune
	cursorY int
	moved   bool
	Quit    bool
}

func NewInput() *Input {
	return &Input{keys: make([]rune, 0, 8)}
}

// Attach installs the key and cursor callbacks on window.
func (in *Input) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		in.onKey(key, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, _, y float64) {
		_, winH := w.GetSize()
		in.onCursor(y, winH)
	})
}

func (in *Input) onKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}
	if key == glfw.KeyEscape {
		in.Quit = true
		return
	}
	r, ok := keyRune(key)
	if !ok {
		r = pong.KeySpecial
	}
	in.keys = append(in.keys, r)
}

func (in *Input) onCursor(y float64, winH int) {
	in.cursorY = cursorToField(y, winH)
	in.moved = true
}

// Flush hands queued input to the session and clears the queue.
func (in *Input) Flush(s *pong.Session) {
	if in.moved {
		s.MouseMoved(in.cursorY)
		in.moved = false
	}
	for _, r := range in.keys {
		s.KeyPressed(r)
	}
	in.keys = in.keys[:0]
}

// keyRune maps a GLFW key to the character it types. Letters come back
// lower case. Modifier, function and navigation keys report false and are
// queued as pong.KeySpecial.
func keyRune(key glfw.Key) (rune, bool) {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return rune(key-glfw.KeyA) + 'a', true
	case key >= glfw.KeySpace && key <= glfw.KeyGraveAccent:
		// Printable GLFW key codes are their US-layout ASCII values.
		return rune(key), true
	case key == glfw.KeyEnter || key == glfw.KeyKPEnter:
		return '\r', true
	case key == glfw.KeyTab:
		return '\t', true
	case key == glfw.KeyBackspace:
		return '\b', true
	case key >= glfw.KeyKP0 && key <= glfw.KeyKP9:
		return rune(key-glfw.KeyKP0) + '0', true
	}
	return 0, false
}

// cursorToField scales a window-space cursor row to a field pixel row.
func cursorToField(y float64, winH int) int {
	if winH <= 0 {
		return 0
	}
	return int(y * pong.ScreenHeight / float64(winH))
}
