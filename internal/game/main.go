package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop opens the window and drives the frame loop until the
// window closes. It owns the GL context thread; everything per-round
// hangs off the session.
func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// Initialize audio system.
	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	} else {
		go func() {
			time.Sleep(100 * time.Millisecond) // let audio context initialize
			StartMenuMusic()
		}()
	}

	// Gameplay numbers: compiled defaults plus optional YAML overrides.
	tun, err := LoadTuning(os.Getenv("BUBBLE_TUNING"))
	if err != nil {
		panic(err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("BUBBLE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(
		float32(Palette.DeepTop.R)/255.0,
		float32(Palette.DeepTop.G)/255.0,
		float32(Palette.DeepTop.B)/255.0,
		1.0,
	)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	session := NewGameSession(seed, tun)
	input := NewInput()

	// Reusable render buffers.
	var glowBuf, normBuf, bodyBuf, haloBuf []float32

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		session.Cam.FitView(fbW, fbH)

		// Sample every edge once per frame so held keys cannot re-fire
		// after a state change.
		esc := input.JustPressed(window, glfw.KeyEscape)
		space := input.JustPressed(window, glfw.KeySpace)
		restart := input.JustPressed(window, glfw.KeyR)
		clicked := input.JustClicked(window, glfw.MouseButtonLeft)

		switch session.State {
		case StateMenu:
			if esc {
				window.SetShouldClose(true)
				continue
			}
			if clicked || space {
				PlaySound(SoundMenuSelect)
				if err := session.StartSession(); err != nil {
					panic(err)
				}
			}

		case StatePlaying:
			switch {
			case esc:
				session.EndToMenu()
			case space:
				session.Pause()
			case restart:
				if err := session.StartSession(); err != nil {
					panic(err)
				}
			case clicked:
				mx, my := CursorWorldPos(window, session.Cam, fbW, fbH)
				session.HitAt(mx, my)
			}

		case StatePaused:
			switch {
			case esc:
				session.EndToMenu()
			case space:
				session.Resume()
			case restart:
				if err := session.StartSession(); err != nil {
					panic(err)
				}
			}
		}

		session.Update(dt)

		// Render with shake applied.
		renderCam := session.Cam
		sx, sy := session.Cam.EffectivePos()
		renderCam.X = sx
		renderCam.Y = sy

		rend.BeginFrame(fbW, fbH)
		top, bottom := BackdropCycle(session.Clock)
		rend.DrawBackground(top, bottom, session.Clock)

		if session.State != StateMenu && session.Sim != nil {
			haloBuf = session.Sim.Bubbles.GlowData(haloBuf[:0])
			rend.DrawGlowSprites(haloBuf, renderCam, fbW, fbH)
			bodyBuf = session.Sim.Bubbles.RenderData(bodyBuf[:0])
			rend.DrawBubbleSprites(bodyBuf, renderCam, fbW, fbH)
		}

		// Particles: two passes (normal + glow).
		glowBuf, normBuf = session.Particles.ParticleRenderData(glowBuf, normBuf)
		rend.DrawSprites(normBuf, renderCam, fbW, fbH)
		rend.DrawGlowSprites(glowBuf, renderCam, fbW, fbH)

		// HUD uses a stable camera (no shake).
		RenderHUD(rend, session, fbW, fbH)

		window.SwapBuffers()
	}
}
