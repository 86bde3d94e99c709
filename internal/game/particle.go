package game

type ParticleKind uint8

const (
	ParticleDroplet ParticleKind = iota
	ParticleGlow
	ParticleRing
	ParticleMote
)

type Particle struct {
	X, Y   float64
	VX, VY float64

	Size float64

	Life    float64 // negative = delayed start
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// ParticleRenderData splits particles into glow (additive) and normal (alpha blend) buffers.
// Format: [x, y, size, r, g, b, a, rotation] * N.
func (ps *ParticleSystem) ParticleRenderData(glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for _, p := range ps.P {
		if p.Life < 0 {
			continue
		}
		t := p.Life / p.MaxLife
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}

		col := p.Col
		a := 1.0 - t
		visSize := p.Size

		switch p.Kind {
		case ParticleDroplet:
			a = (1.0 - t) * 0.9
			visSize *= 1.0 - 0.35*t
		case ParticleGlow:
			a = (1.0 - t) * 1.15
		case ParticleRing:
			// Expands fast, then eases out while it fades.
			grow := 1.0 - (1.0-t)*(1.0-t)
			visSize *= 0.25 + 0.75*grow
			a = (1.0 - t) * 0.55
		case ParticleMote:
			fadeIn := t / 0.15
			if fadeIn > 1 {
				fadeIn = 1
			}
			a = (1.0 - t) * fadeIn * 0.45
		}
		if a <= 0 {
			continue
		}

		rc := float32(col.R) / 255.0
		gc := float32(col.G) / 255.0
		bc := float32(col.B) / 255.0
		ac := float32(a)
		if ac > 1 {
			ac = 1
		}

		// Additive: pre-multiply color by alpha.
		if p.Kind == ParticleGlow || p.Kind == ParticleRing {
			rc *= ac
			gc *= ac
			bc *= ac
		}

		sx := float32(p.X)
		sy := float32(p.Y)
		sz := float32(visSize)

		if p.Kind == ParticleGlow || p.Kind == ParticleRing {
			glowBuf = append(glowBuf, sx, sy, sz, rc, gc, bc, ac, 0)
		} else {
			normBuf = append(normBuf, sx, sy, sz, rc, gc, bc, ac, 0)
		}
	}
	return glowBuf, normBuf
}
