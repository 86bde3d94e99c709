package game

// AmbientSystem keeps a thin population of drifting motes alive so the
// water reads as a volume instead of a flat backdrop.
type AmbientSystem struct {
	seed     uint64
	rate     float64
	currentX float64 // slow horizontal current, px/s
	spawnAcc float64
	driftAcc float64
	spawnSeq uint64
}

func NewAmbientSystem(seed uint64) *AmbientSystem {
	as := &AmbientSystem{}
	as.Configure(seed)
	return as
}

func (as *AmbientSystem) Configure(seed uint64) {
	if as == nil {
		return
	}
	if seed == 0 {
		seed = 1
	}
	as.seed = seed ^ 0x4D07E512
	as.spawnAcc = 0
	as.driftAcc = 0
	as.spawnSeq = 0

	r := NewRand(as.seed ^ 0xA24BAED4)
	as.rate = MoteRate * (0.8 + r.RangeF(0, 0.5))
	as.currentX = r.RangeF(-6.0, 6.0)
}

// SeedField pre-fills the viewport so the first frame is not empty. Motes
// start partway through their lives to skip the synchronized fade-in.
func (as *AmbientSystem) SeedField(ps *ParticleSystem, count int) {
	if as == nil || ps == nil {
		return
	}
	for i := 0; i < count; i++ {
		as.spawnSeq++
		r := NewRand(as.seed ^ as.spawnSeq*0x9E3779B185EBCA87)
		ml := r.RangeF(4.0, 9.0)
		as.addMote(ps, r, ml, r.RangeF(ml*0.15, ml*0.6))
	}
}

func (as *AmbientSystem) UpdateAndSpawn(ps *ParticleSystem, dt float64) {
	if as == nil || ps == nil || dt <= 0 {
		return
	}

	// Slow current drift so motes do not track one direction forever.
	as.driftAcc += dt
	if as.driftAcc >= 0.8 {
		g := NewRand(as.seed ^ uint64(int(as.driftAcc*1000)+1)*0xC2B2AE3D27D4EB4F ^ as.spawnSeq)
		as.currentX = clampF(as.currentX+g.RangeF(-1.6, 1.6), -9.0, 9.0)
		as.driftAcc = 0
	}

	as.spawnAcc += as.rate * dt
	count := int(as.spawnAcc)
	if count <= 0 {
		return
	}
	as.spawnAcc -= float64(count)

	live := 0
	for i := range ps.P {
		if ps.P[i].Kind == ParticleMote {
			live++
		}
	}
	if live >= MoteMax {
		return
	}

	for i := 0; i < count; i++ {
		as.spawnSeq++
		r := NewRand(as.seed ^ as.spawnSeq*0x9E3779B185EBCA87)
		as.addMote(ps, r, r.RangeF(4.0, 9.0), -r.RangeF(0, 0.4))
	}
}

func (as *AmbientSystem) addMote(ps *ParticleSystem, r *Rand, maxLife, life float64) {
	d := r.Range(-16, 0)
	ps.Add(Particle{
		X:       r.RangeF(-10.0, ViewportW+10.0),
		Y:       r.RangeF(0.0, ViewportH+24.0),
		VX:      as.currentX + r.RangeF(-3.0, 3.0),
		VY:      -r.RangeF(3.0, 12.0),
		Size:    r.RangeF(1.0, 2.2),
		Life:    life,
		MaxLife: maxLife,
		Col:     Palette.Mote.Add(d, d, d),
		Kind:    ParticleMote,
	})
}
