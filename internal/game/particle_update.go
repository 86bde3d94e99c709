package game

import "math"

const (
	dropletSink = 150.0 // px/s^2, droplets brake and sink once thrown
	dropletDrag = 2.1
)

// particleDecays holds exponential drag factors precomputed once per frame.
// Avoids calling math.Exp() inside the per-particle hot loop.
type particleDecays struct {
	dropletXY float64 // exp(-dropletDrag * dt)
	glowXY    float64 // exp(-5.5 * dt)
	moteXY    float64 // exp(-0.5 * dt)
}

func computeDecays(dt float64) particleDecays {
	return particleDecays{
		dropletXY: math.Exp(-dropletDrag * dt),
		glowXY:    math.Exp(-5.5 * dt),
		moteXY:    math.Exp(-0.5 * dt),
	}
}

func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}

	d := computeDecays(dt)

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]

		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}

		// Skip delayed particles.
		if p.Life < 0 {
			i++
			continue
		}

		switch p.Kind {
		case ParticleDroplet:
			updateDroplet(p, dt, d.dropletXY)
		case ParticleGlow:
			updateGlowSpark(p, dt, d.glowXY)
		case ParticleRing:
			// Rings stay where the bubble burst; growth is resolved at render time.
		case ParticleMote:
			updateMote(p, dt, d.moteXY)
		}

		i++
	}
}

func updateDroplet(p *Particle, dt, decayXY float64) {
	p.VX *= decayXY
	p.VY = p.VY*decayXY + dropletSink*dt
	p.X += p.VX * dt
	p.Y += p.VY * dt

	if p.Y > ViewportH+20 {
		p.Life = p.MaxLife
	}
}

func updateGlowSpark(p *Particle, dt, decayXY float64) {
	p.VX *= decayXY
	p.VY *= decayXY
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

func updateMote(p *Particle, dt, decayXY float64) {
	wobble := math.Sin((p.X*0.05)+(p.Y*0.03)+(p.Life*1.6)) * 6.0
	p.VX = p.VX*decayXY + wobble*dt
	p.X += p.VX * dt
	p.Y += p.VY * dt

	// Cull quickly once motes drift outside an expanded viewport rectangle.
	if p.X < -24 || p.X > ViewportW+24 || p.Y < -24 || p.Y > ViewportH+24 {
		p.Life = p.MaxLife
	}
}
