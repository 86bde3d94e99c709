package game

import "testing"

func newPlayingSession(t *testing.T, seed uint64) *GameSession {
	t.Helper()
	g := NewGameSession(seed, DefaultTuning())
	if err := g.StartSession(); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	return g
}

func TestStartSessionEntersPlayingWithSeeds(t *testing.T) {
	g := NewGameSession(77, DefaultTuning())
	if g.State != StateMenu {
		t.Fatalf("fresh session state = %v, want menu", g.State)
	}

	if err := g.StartSession(); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if g.State != StatePlaying {
		t.Fatalf("state after start = %v, want playing", g.State)
	}
	if got := g.Sim.Bubbles.LiveCount(); got != g.Tun.SeedBubbles {
		t.Fatalf("live bubbles after start = %d, want %d", got, g.Tun.SeedBubbles)
	}
}

func TestHitAtPopsTheBubbleUnderThePoint(t *testing.T) {
	g := newPlayingSession(t, 77)

	b := g.Sim.Bubbles.B[0]
	g.HitAt(b.X, b.Y)
	g.Update(1.0 / 60.0)

	if g.Sim.Score.TotalPopped != 1 {
		t.Fatalf("TotalPopped = %d, want 1", g.Sim.Score.TotalPopped)
	}
	if len(g.floaters) != 1 {
		t.Fatalf("floaters = %d, want 1", len(g.floaters))
	}
	if g.floaters[0].Text[0] != '+' {
		t.Fatalf("floater text = %q, want a +score label", g.floaters[0].Text)
	}

	burst := 0
	for _, p := range g.Particles.P {
		if p.Kind != ParticleMote {
			burst++
		}
	}
	if burst == 0 {
		t.Fatalf("pop left no burst particles behind")
	}
}

func TestHitAtOnEmptyWaterIsIgnored(t *testing.T) {
	g := newPlayingSession(t, 13)

	// Park every bubble in a corner, then click the opposite one.
	for i := range g.Sim.Bubbles.B {
		g.Sim.Bubbles.B[i].X = 50
		g.Sim.Bubbles.B[i].Y = 50
	}
	g.HitAt(ViewportW-10, ViewportH-10)
	g.Update(1.0 / 60.0)

	if g.Sim.Score.TotalPopped != 0 {
		t.Fatalf("a miss popped something: %d", g.Sim.Score.TotalPopped)
	}
}

func TestComboBannerAppearsAtTierStreak(t *testing.T) {
	g := newPlayingSession(t, 42)

	for i := 0; i < ComboMinStreak; i++ {
		b := g.Sim.Bubbles.B[0]
		g.HitAt(b.X, b.Y)
		g.Update(1.0 / 60.0)
	}

	if g.Sim.Score.Streak != ComboMinStreak {
		t.Fatalf("streak = %d, want %d", g.Sim.Score.Streak, ComboMinStreak)
	}
	if g.ComboMsg != "NICE!" {
		t.Fatalf("combo banner = %q, want NICE!", g.ComboMsg)
	}
	if g.ComboTimer <= 0 {
		t.Fatalf("combo banner timer not armed")
	}
	if g.Cam.ShakeTimer <= 0 {
		t.Fatalf("combo did not kick the camera")
	}
}

func TestPauseFreezesTheRound(t *testing.T) {
	g := newPlayingSession(t, 5)
	for i := 0; i < 30; i++ {
		g.Update(1.0 / 60.0)
	}

	g.Pause()
	if g.State != StatePaused {
		t.Fatalf("state after pause = %v", g.State)
	}

	playTime := g.PlayTime
	live := g.Sim.Bubbles.LiveCount()
	clock := g.Clock
	for i := 0; i < 60; i++ {
		g.Update(1.0 / 60.0)
	}

	if g.PlayTime != playTime {
		t.Fatalf("simulation time advanced while paused: %v -> %v", playTime, g.PlayTime)
	}
	if g.Sim.Bubbles.LiveCount() != live {
		t.Fatalf("population changed while paused: %d -> %d", live, g.Sim.Bubbles.LiveCount())
	}
	if g.Clock <= clock {
		t.Fatalf("backdrop clock frozen while paused")
	}

	g.Resume()
	if g.State != StatePlaying {
		t.Fatalf("state after resume = %v", g.State)
	}
	g.Update(1.0 / 60.0)
	if g.PlayTime <= playTime {
		t.Fatalf("simulation time did not resume")
	}
}

func TestEndToMenuKeepsBestScore(t *testing.T) {
	g := newPlayingSession(t, 21)

	b := g.Sim.Bubbles.B[0]
	g.HitAt(b.X, b.Y)
	g.Update(1.0 / 60.0)
	score := g.Sim.Score.TotalScore
	if score <= 0 {
		t.Fatalf("pop scored nothing")
	}

	g.EndToMenu()
	if g.State != StateMenu {
		t.Fatalf("state after leaving = %v, want menu", g.State)
	}
	if g.BestScore != score {
		t.Fatalf("best score = %d, want %d", g.BestScore, score)
	}
}

func TestRestartRollsAFreshRound(t *testing.T) {
	g := newPlayingSession(t, 33)
	first := g.Sim.Bubbles.B[0]

	if err := g.StartSession(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if g.PlayTime != 0 {
		t.Fatalf("restart kept the old session time %v", g.PlayTime)
	}
	if first == g.Sim.Bubbles.B[0] {
		t.Fatalf("restart reproduced the previous round's first bubble")
	}
}

func TestStreakFractionDrainsAndEmpties(t *testing.T) {
	g := newPlayingSession(t, 55)
	if g.StreakFraction() != 0 {
		t.Fatalf("fraction armed before any pop")
	}

	b := g.Sim.Bubbles.B[0]
	g.HitAt(b.X, b.Y)
	g.Update(1.0 / 60.0)
	f0 := g.StreakFraction()
	if f0 <= 0.9 {
		t.Fatalf("fresh pop fraction = %v, want near full", f0)
	}

	for i := 0; i < 30; i++ {
		g.Update(1.0 / 60.0)
	}
	f1 := g.StreakFraction()
	if f1 >= f0 || f1 <= 0 {
		t.Fatalf("fraction did not drain: %v -> %v", f0, f1)
	}

	for i := 0; i < 60; i++ {
		g.Update(1.0 / 60.0)
	}
	if got := g.StreakFraction(); got != 0 {
		t.Fatalf("fraction after the window lapsed = %v, want 0", got)
	}
}
