package game

import "math"

// SpawnPopBurst scatters droplets, sparks and an expanding ring where a
// bubble burst. Bigger bubbles throw more and faster spray.
func (ps *ParticleSystem) SpawnPopBurst(x, y, radius float64, shade BubbleShade) {
	r := NewRand(ps.seed ^ uint64(int(x)*31+int(y)*17))
	k := clampF(radius/RadiusMax, 0.2, 1.0)

	// Droplets.
	for range 10 + int(24*k) {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(40, 150) * (0.55 + 0.45*k)
		col := shade.Body.Add(r.Range(-14, 14), r.Range(-14, 14), r.Range(-14, 14))
		ps.Add(Particle{
			X: x + math.Cos(ang)*radius*0.55, Y: y + math.Sin(ang)*radius*0.55,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang)*spd - 24,
			Size: r.RangeF(1.6, 3.4), MaxLife: r.RangeF(0.45, 0.95),
			Col: col, Kind: ParticleDroplet,
		})
	}

	// Sparks.
	for range 6 + int(10*k) {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(70, 230)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(1.2, 2.4), MaxLife: r.RangeF(0.1, 0.28),
			Col: shade.Glow, Kind: ParticleGlow,
		})
	}

	// Shockwave ring.
	ps.Add(Particle{
		X: x, Y: y,
		Size: radius * 3.6, MaxLife: 0.38,
		Col: shade.Rim, Kind: ParticleRing,
	})
}

// SpawnSurfaceRipple marks a bubble leaving through the top edge with a
// faint ring pinned just under the surface line.
func (ps *ParticleSystem) SpawnSurfaceRipple(x, radius float64, shade BubbleShade) {
	ps.Add(Particle{
		X: x, Y: 3.0,
		Size: radius * 2.4, MaxLife: 0.3,
		Col: shade.Rim.Mul(90), Kind: ParticleRing,
	})
}

// SpawnComboBurst celebrates a new streak tier with an even radial flash.
func (ps *ParticleSystem) SpawnComboBurst(x, y float64, col RGB, streak int) {
	r := NewRand(ps.seed ^ uint64(streak)*0x9E3779B97F4A7C15 ^ uint64(int(x)*31+int(y)*17))
	n := 14 + 4*clamp(streak, 0, StreakCap)

	for i := range n {
		ang := (float64(i) + r.RangeF(-0.2, 0.2)) / float64(n) * math.Pi * 2
		spd := r.RangeF(90, 200)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(1.4, 2.6),
			Life: -r.RangeF(0, 0.06), MaxLife: r.RangeF(0.28, 0.55),
			Col: col, Kind: ParticleGlow,
		})
	}
}
