package game

import "math"

// SpawnController gates bubble creation on the population cap and the
// spawn cadence. Randomness is derived per spawn from the base seed and
// a sequence number, so a session replays exactly from its seed.
type SpawnController struct {
	tun       Tuning
	seed      uint64
	spawnSeq  uint64
	lastSpawn float64 // session time of the last successful spawn
}

func NewSpawnController(seed uint64, tun Tuning) *SpawnController {
	return &SpawnController{tun: tun, seed: seed}
}

func (sc *SpawnController) nextSpawnRand(salt uint64) *Rand {
	sc.spawnSeq++
	// Splitmix-style avalanche so consecutive spawn seeds do not correlate.
	z := sc.seed ^ salt ^ sc.spawnSeq*0x9E3779B185EBCA87
	z += 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	return NewRand(z)
}

// rollBubble samples the per-entity constants from the tuned ranges.
// Position is left for the caller: entry and seeding place differently.
func (sc *SpawnController) rollBubble(r *Rand) Bubble {
	return Bubble{
		VX:           r.RangeF(-sc.tun.DriftMax, sc.tun.DriftMax),
		VY:           -r.RangeF(sc.tun.RiseMin, sc.tun.RiseMax),
		Radius:       r.RangeF(sc.tun.RadiusMin, sc.tun.RadiusMax),
		WobbleSpeed:  r.RangeF(sc.tun.WobbleSpdMin, sc.tun.WobbleSpdMax),
		WobbleAmp:    r.RangeF(sc.tun.WobbleAmpMin, sc.tun.WobbleAmpMax),
		WobbleOffset: r.RangeF(0, 2*math.Pi),
		BreathePhase: r.RangeF(0, 2*math.Pi),
		Hue:          r.RangeF(sc.tun.HueMin, sc.tun.HueMax),
		Scale:        1,
	}
}

// MaybeSpawn returns one new bubble when the cadence allows and the
// population is below the cap. Blocked attempts consume nothing: a cap
// block leaves the cadence anchor alone, so a freed slot spawns on the
// next eligible tick.
func (sc *SpawnController) MaybeSpawn(now float64, liveCount int) (Bubble, bool) {
	if liveCount >= sc.tun.MaxBubbles {
		return Bubble{}, false
	}
	if now-sc.lastSpawn < sc.tun.SpawnInterval {
		return Bubble{}, false
	}

	// Advance by whole intervals to keep the long-run cadence exact at
	// any frame rate; snap forward after a stall so there is no burst
	// of catch-up spawns once the cap frees up.
	sc.lastSpawn += sc.tun.SpawnInterval
	if now-sc.lastSpawn >= sc.tun.SpawnInterval {
		sc.lastSpawn = now
	}

	r := sc.nextSpawnRand(0xB0BB1E)
	b := sc.rollBubble(r)
	b.BaseX = r.RangeF(b.Radius, ViewportW-b.Radius)
	b.X = b.BaseX
	b.Y = ViewportH + b.Radius + r.RangeF(SpawnBelowMin, SpawnBelowMax)
	return b, true
}

// SpawnSeeds rolls the bubbles pre-seeded at session start. They bypass
// the below-viewport entry rule so the scene is populated immediately.
func (sc *SpawnController) SpawnSeeds() []Bubble {
	out := make([]Bubble, 0, sc.tun.SeedBubbles)
	for i := 0; i < sc.tun.SeedBubbles; i++ {
		r := sc.nextSpawnRand(uint64(i+1) * 0x5EED)
		b := sc.rollBubble(r)
		b.BaseX = r.RangeF(b.Radius, ViewportW-b.Radius)
		b.X = b.BaseX
		b.Y = r.RangeF(b.Radius, ViewportH-b.Radius)
		out = append(out, b)
	}
	return out
}
