package game

import "testing"

func TestAddOverwritesOldestWhenFull(t *testing.T) {
	ps := NewParticleSystem(4, 1)
	for i := 0; i < 6; i++ {
		ps.Add(Particle{Size: float64(i + 1), MaxLife: 1})
	}
	if len(ps.P) != 4 {
		t.Fatalf("particle count = %d, want the cap 4", len(ps.P))
	}
	// Slots 0 and 1 now hold the 5th and 6th particles.
	if ps.P[0].Size != 5 || ps.P[1].Size != 6 {
		t.Fatalf("overwrite order wrong: sizes %v %v", ps.P[0].Size, ps.P[1].Size)
	}
	if ps.P[2].Size != 3 || ps.P[3].Size != 4 {
		t.Fatalf("survivors clobbered: sizes %v %v", ps.P[2].Size, ps.P[3].Size)
	}
}

func TestUpdateRemovesExpiredParticles(t *testing.T) {
	ps := NewParticleSystem(16, 1)
	ps.Add(Particle{MaxLife: 0.1})
	ps.Add(Particle{MaxLife: 5})

	ps.Update(0.2)
	if len(ps.P) != 1 {
		t.Fatalf("particle count after expiry = %d, want 1", len(ps.P))
	}
	if ps.P[0].MaxLife != 5 {
		t.Fatalf("wrong particle survived: %+v", ps.P[0])
	}
}

func TestDelayedParticleWaitsForItsTurn(t *testing.T) {
	ps := NewParticleSystem(16, 1)
	ps.Add(Particle{X: 50, VX: 100, Life: -0.1, MaxLife: 1, Kind: ParticleGlow})

	ps.Update(0.05)
	if ps.P[0].X != 50 {
		t.Fatalf("delayed particle moved early: x=%v", ps.P[0].X)
	}
	glow, norm := ps.ParticleRenderData(nil, nil)
	if len(glow) != 0 || len(norm) != 0 {
		t.Fatalf("delayed particle rendered: glow=%d norm=%d", len(glow), len(norm))
	}

	ps.Update(0.1)
	if ps.P[0].X == 50 {
		t.Fatalf("particle still frozen after its delay elapsed")
	}
	glow, norm = ps.ParticleRenderData(glow, norm)
	if len(glow) != 8 {
		t.Fatalf("active glow particle missing from the render buffer: %d floats", len(glow))
	}
}

func TestDropletsSinkAndCullBelowViewport(t *testing.T) {
	ps := NewParticleSystem(16, 1)
	ps.Add(Particle{Y: 300, VY: -100, MaxLife: 10, Kind: ParticleDroplet})

	for i := 0; i < 30; i++ {
		ps.Update(1.0 / 60.0)
	}
	if ps.P[0].VY <= -100 {
		t.Fatalf("droplet never slowed toward sinking: vy=%v", ps.P[0].VY)
	}

	ps.Clear()
	ps.Add(Particle{Y: ViewportH + 25, VY: 10, MaxLife: 10, Kind: ParticleDroplet})
	ps.Update(0.016)
	ps.Update(0.016)
	if len(ps.P) != 0 {
		t.Fatalf("droplet below the viewport not culled")
	}
}

func TestPopBurstScalesWithRadius(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 42)

	ps.SpawnPopBurst(400, 300, RadiusMin, ShadeFromHue(120))
	small := len(ps.P)
	ps.Clear()
	ps.SpawnPopBurst(400, 300, RadiusMax, ShadeFromHue(120))
	big := len(ps.P)

	if small == 0 || big <= small {
		t.Fatalf("burst sizes: small=%d big=%d, want bigger bursts for bigger bubbles", small, big)
	}

	var hasDroplet, hasGlow, hasRing bool
	for _, p := range ps.P {
		switch p.Kind {
		case ParticleDroplet:
			hasDroplet = true
		case ParticleGlow:
			hasGlow = true
		case ParticleRing:
			hasRing = true
		}
	}
	if !hasDroplet || !hasGlow || !hasRing {
		t.Fatalf("burst missing kinds: droplet=%v glow=%v ring=%v", hasDroplet, hasGlow, hasRing)
	}
}

func TestComboBurstGrowsWithStreak(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 7)

	ps.SpawnComboBurst(400, 300, RGB{R: 255, G: 215, B: 80}, ComboMinStreak)
	low := len(ps.P)
	ps.Clear()
	ps.SpawnComboBurst(400, 300, RGB{R: 255, G: 215, B: 80}, StreakCap)
	high := len(ps.P)

	if low == 0 || high <= low {
		t.Fatalf("combo burst sizes: low=%d high=%d", low, high)
	}
	for _, p := range ps.P {
		if p.Kind != ParticleGlow {
			t.Fatalf("combo burst spawned a non-glow particle: %+v", p)
		}
	}
}

func TestRenderDataSplitsGlowFromNormal(t *testing.T) {
	ps := NewParticleSystem(16, 1)
	ps.Add(Particle{Size: 2, MaxLife: 1, Kind: ParticleDroplet, Col: RGB{R: 255}})
	ps.Add(Particle{Size: 2, MaxLife: 1, Kind: ParticleGlow, Col: RGB{R: 255}})
	ps.Add(Particle{Size: 2, MaxLife: 1, Kind: ParticleRing, Col: RGB{R: 255}})

	glow, norm := ps.ParticleRenderData(nil, nil)
	if len(norm) != 8 {
		t.Fatalf("normal buffer has %d floats, want 8 (droplet only)", len(norm))
	}
	if len(glow) != 16 {
		t.Fatalf("glow buffer has %d floats, want 16 (spark and ring)", len(glow))
	}
	// Additive sprites carry premultiplied color: the fresh ring's red
	// channel equals its 0.55 alpha.
	if glow[8+3] != glow[8+6] {
		t.Fatalf("ring color not premultiplied: r=%v a=%v", glow[8+3], glow[8+6])
	}
}
