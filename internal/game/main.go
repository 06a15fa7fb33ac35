package game

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"pong/internal/pong"
)

func RunDesktop() {
	runtime.LockOSThread()

	settings, err := pong.LoadSettings(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v (using defaults)\n", err)
		settings = pong.DefaultSettings()
	}

	winW, winH := settings.WindowSize()
	window, err := initWindow(winW, winH)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	bus := pong.NewEventBus()

	audio, err := InitAudio(settings.Mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}
	BindAudio(audio, bus)

	var cam Camera
	BindShake(&cam, bus)

	session := pong.NewSession(settings, bus)
	input := NewInput()
	input.Attach(window)

	seed := uint64(time.Now().UnixNano())
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		input.Flush(session)
		if input.Quit || session.Quit {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		session.Advance(dt)
		cam.UpdateShake(dt, seed^uint64(now*1000))

		rend.BeginFrame(&cam, fbW, fbH)
		if session.State != pong.StateIntro {
			rend.DrawMatch(session.Match)
		}
		rend.DrawText(pong.Overlay(session))
		window.SwapBuffers()
	}
}
