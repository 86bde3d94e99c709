package game

import "fmt"

// RenderHUD draws all text and meters for the current state. Layout is
// in viewport pixels; FlushText maps them to the framebuffer through an
// unshaken camera.
func RenderHUD(r *Renderer, g *GameSession, fbW, fbH int) {
	switch g.State {
	case StateMenu:
		title := "BUBBLE POP"
		titleScale := float32(3.0)
		r.DrawString(title, WindowWidth/2-TextWidth(title, titleScale)/2, WindowHeight/2-110, titleScale, Palette.MeterFill)

		msg := "CLICK TO START"
		r.DrawString(msg, WindowWidth/2-TextWidth(msg, 1.0)/2, WindowHeight/2-10, 1.0, Palette.Text)

		hint := "POP FAST TO CHAIN COMBOS"
		r.DrawString(hint, WindowWidth/2-TextWidth(hint, 0.65)/2, WindowHeight/2+30, 0.65, Palette.TextDim)

		if g.BestScore > 0 {
			best := fmt.Sprintf("BEST %d", g.BestScore)
			r.DrawString(best, WindowWidth/2-TextWidth(best, 0.75)/2, WindowHeight/2+70, 0.75, Palette.Highlight)
		}

	case StatePlaying, StatePaused:
		drawPlayHUD(r, g)
		if g.State == StatePaused {
			msg := "PAUSED"
			r.DrawString(msg, WindowWidth/2-TextWidth(msg, 2.0)/2, WindowHeight/2-40, 2.0, Palette.Text)
			hint := "SPACE RESUME - R RESTART - ESC MENU"
			r.DrawString(hint, WindowWidth/2-TextWidth(hint, 0.65)/2, WindowHeight/2+10, 0.65, Palette.TextDim)
		}
	}

	r.FlushText(fbW, fbH)
}

func drawPlayHUD(r *Renderer, g *GameSession) {
	// Top-left: score and pop count.
	scoreStr := fmt.Sprintf("SCORE %d", g.Sim.Score.TotalScore)
	r.DrawString(scoreStr, 10, 10, 1.0, Palette.Text)
	popStr := fmt.Sprintf("POPPED %d", g.Sim.Score.TotalPopped)
	r.DrawString(popStr, 10, 32, 0.65, Palette.TextDim)

	// Bottom-left: live population against the cap.
	liveStr := fmt.Sprintf("BUBBLES %d/%d", g.Sim.Bubbles.LiveCount(), g.Tun.MaxBubbles)
	r.DrawString(liveStr, 10, WindowHeight-24, 0.65, Palette.TextDim)

	// Top-right: streak multiplier and the window meter. Hidden until a
	// chain is actually going.
	frac := g.StreakFraction()
	if g.Sim.Score.Streak >= 2 && frac > 0 {
		const barChars = 10
		barScale := float32(0.75)
		bar := fmt.Sprintf("[%-*s]", barChars, repeatChar('#', int(float64(barChars)*frac+0.5)))
		barX := WindowWidth - TextWidth(bar, barScale) - 10
		r.DrawString(bar, barX, 32, barScale, Palette.MeterFill)

		mulStr := fmt.Sprintf("X%d", g.Sim.Score.Streak)
		mulCol := Palette.MeterFill
		if _, col := comboTier(g.Sim.Score.Streak); g.Sim.Score.Streak >= ComboMinStreak {
			mulCol = col
		}
		r.DrawString(mulStr, WindowWidth-TextWidth(mulStr, 1.0)-10, 10, 1.0, mulCol)
	}

	// Score floaters, fading over their last third.
	for i := range g.floaters {
		f := &g.floaters[i]
		alpha := float32(clampF(f.Life/0.3, 0, 1))
		fx := int(f.X) - TextWidth(f.Text, 0.65)/2
		r.DrawStringAlpha(f.Text, fx, int(f.Y), 0.65, f.Col, alpha)
	}

	// Combo banner.
	if g.ComboTimer > 0 {
		alpha := float32(clampF(g.ComboTimer/0.4, 0, 1))
		bScale := float32(1.8)
		bx := WindowWidth/2 - TextWidth(g.ComboMsg, bScale)/2
		r.DrawStringAlpha(g.ComboMsg, bx, WindowHeight/2-120, bScale, g.ComboCol, alpha)
	}
}

// repeatChar returns a string of n copies of ch.
func repeatChar(ch byte, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ch
	}
	return string(b)
}
