package game

import "fmt"

type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
)

// floater is a rising score label spawned where a bubble popped.
type floater struct {
	Text string
	X, Y float64
	Life float64
	Col  RGB
}

// GameSession owns one player-facing run of the game: the simulation,
// the presentation systems around it and the menu/pause state machine.
// The simulation itself never sees any of this; it is observed through
// its event bus and render buffers only.
type GameSession struct {
	State GameState
	Tun   Tuning

	Sim       *Sim
	Particles *ParticleSystem
	Ambient   *AmbientSystem
	Cam       Camera

	PlayTime  float64 // simulation time of the current round
	Clock     float64 // wall time since launch, drives the backdrop
	Rounds    uint64
	BestScore int

	// Combo banner shown center-screen while ComboTimer > 0.
	ComboMsg   string
	ComboCol   RGB
	ComboTimer float64

	floaters []floater

	seed uint64
}

// NewGameSession builds the menu-state shell around a future simulation.
// The tuning is validated again each time a round starts.
func NewGameSession(seed uint64, tun Tuning) *GameSession {
	if seed == 0 {
		seed = 1
	}
	g := &GameSession{
		State:     StateMenu,
		Tun:       tun,
		seed:      seed,
		Particles: NewParticleSystem(MaxParticles, seed^0x7A12BED5),
		Ambient:   NewAmbientSystem(seed ^ 0x0DDBA11),
	}
	g.Ambient.SeedField(g.Particles, MoteMax/2)
	return g
}

// StartSession resets every per-round system under a fresh derived seed
// and begins play. The previous round's particles are discarded.
func (g *GameSession) StartSession() error {
	g.Rounds++
	roundSeed := splitmix64(g.seed ^ g.Rounds*0xA11CE5ED)

	sim, err := NewSim(roundSeed, g.Tun)
	if err != nil {
		return err
	}
	g.Sim = sim
	g.Sim.Bus.Subscribe(EventPopped, g.onPopped)
	g.Sim.Bus.Subscribe(EventDespawned, g.onDespawned)

	g.Particles.Clear()
	g.Ambient.Configure(roundSeed ^ 0x0DDBA11)
	g.Ambient.SeedField(g.Particles, MoteMax/2)

	g.Cam = Camera{}
	g.PlayTime = 0
	g.ComboMsg = ""
	g.ComboTimer = 0
	g.floaters = g.floaters[:0]

	g.Sim.SeedSession()
	g.State = StatePlaying

	StartSessionMusic()
	PlaySound(SoundSessionStart)
	return nil
}

// Pause freezes the round. The music keeps playing, ducked.
func (g *GameSession) Pause() {
	if g.State != StatePlaying {
		return
	}
	g.State = StatePaused
	SetMusicVolume(0.04)
	PlaySoundWithGain(SoundMenuSelect, 0.5)
}

func (g *GameSession) Resume() {
	if g.State != StatePaused {
		return
	}
	g.State = StatePlaying
	SetMusicVolume(0.11)
	PlaySoundWithGain(SoundMenuSelect, 0.5)
}

// EndToMenu abandons the round and returns to the title screen.
func (g *GameSession) EndToMenu() {
	if g.Sim != nil && g.Sim.Score.TotalScore > g.BestScore {
		g.BestScore = g.Sim.Score.TotalScore
	}
	g.State = StateMenu
	g.ComboTimer = 0
	g.floaters = g.floaters[:0]
	StartMenuMusic()
}

// HitAt queues a pop for the topmost bubble under the given world point.
// A miss is ignored; everything downstream is the simulation's call.
func (g *GameSession) HitAt(wx, wy float64) {
	if g.State != StatePlaying || g.Sim == nil {
		return
	}
	if id, ok := PickBubble(g.Sim.Bubbles, wx, wy); ok {
		g.Sim.QueueHit(id, g.PlayTime)
	}
}

// Update advances one frame. The simulation only ticks while playing;
// the menu keeps the ambient field alive and pause freezes everything
// except the backdrop clock.
func (g *GameSession) Update(dt float64) {
	g.Clock += dt

	switch g.State {
	case StatePlaying:
		g.PlayTime += dt
		g.Sim.Tick(dt, g.PlayTime)

		g.Particles.Update(dt)
		g.Ambient.UpdateAndSpawn(g.Particles, dt)
		g.Cam.UpdateShake(dt, g.seed^g.Rounds*0x51AB5EED)
		g.updateFloaters(dt)
		if g.ComboTimer > 0 {
			g.ComboTimer -= dt
		}
		if g.Sim.Score.TotalScore > g.BestScore {
			g.BestScore = g.Sim.Score.TotalScore
		}

	case StateMenu:
		g.Particles.Update(dt)
		g.Ambient.UpdateAndSpawn(g.Particles, dt)
	}
}

// StreakFraction reports how much of the streak window remains, zero
// when no streak is armed.
func (g *GameSession) StreakFraction() float64 {
	if g.Sim == nil || g.Sim.Score.Streak == 0 {
		return 0
	}
	rem := g.Tun.StreakWindow - (g.PlayTime - g.Sim.Score.LastPop)
	if rem < 0 {
		return 0
	}
	return rem / g.Tun.StreakWindow
}

func (g *GameSession) onPopped(e Event) {
	b := e.Bubble
	sh := ShadeFromHue(b.Hue)
	g.Particles.SpawnPopBurst(b.X, b.Y, b.Radius, sh)
	PlayPopSound(b.Radius)
	g.addFloater(fmt.Sprintf("+%d", e.ScoreDelta), b.X, b.Y-b.Radius-6, sh.Rim)

	if e.Tier != "" {
		g.ComboMsg = e.Tier
		g.ComboCol = e.TierCol
		g.ComboTimer = ComboBannerTime
		g.Particles.SpawnComboBurst(b.X, b.Y, e.TierCol, e.Streak)
		PlayComboSound(e.Streak)
		g.Cam.AddShake(1.2+0.4*float64(e.Streak), 0.22)
	}
}

func (g *GameSession) onDespawned(e Event) {
	b := e.Bubble
	g.Particles.SpawnSurfaceRipple(b.X, b.Radius, ShadeFromHue(b.Hue))
}

func (g *GameSession) addFloater(text string, x, y float64, col RGB) {
	if len(g.floaters) >= 24 {
		copy(g.floaters, g.floaters[1:])
		g.floaters = g.floaters[:len(g.floaters)-1]
	}
	g.floaters = append(g.floaters, floater{Text: text, X: x, Y: y, Life: FloaterTime, Col: col})
}

func (g *GameSession) updateFloaters(dt float64) {
	for i := 0; i < len(g.floaters); {
		f := &g.floaters[i]
		f.Life -= dt
		f.Y -= FloaterRise * dt
		if f.Life <= 0 {
			last := len(g.floaters) - 1
			g.floaters[i] = g.floaters[last]
			g.floaters = g.floaters[:last]
			continue
		}
		i++
	}
}
