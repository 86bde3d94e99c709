package game

import "math"

// Update advances every live bubble one tick. dt integrates velocity;
// t is the absolute session time, which keys the oscillatory terms so
// long sessions never accumulate phase error.
func (bs *BubbleSystem) Update(dt, t float64, tun Tuning) {
	for i := range bs.B {
		b := &bs.B[i]
		if !b.Alive {
			continue
		}
		b.Age += dt

		b.BaseX += b.VX * dt
		b.Y += b.VY * dt

		// Wall reflection acts on the drift baseline; damping bleeds
		// energy so a bubble cannot ping-pong forever at full speed.
		if b.BaseX-b.Radius < 0 {
			b.BaseX = b.Radius
			b.VX = -b.VX * tun.WallDamping
		} else if b.BaseX+b.Radius > ViewportW {
			b.BaseX = ViewportW - b.Radius
			b.VX = -b.VX * tun.WallDamping
		}

		// Wobble is an additive offset around the baseline. It never
		// feeds back into BaseX, so drift and oscillation compose.
		b.X = b.BaseX + b.WobbleAmp*math.Sin(t*b.WobbleSpeed+b.WobbleOffset)
		b.Scale = 1 + tun.BreatheAmp*math.Sin(t*tun.BreatheFreq+b.BreathePhase)

		// Fully above the top edge: gone. No side or bottom despawn.
		if b.Y+b.Radius < DespawnY {
			b.Alive = false
		}
	}
}
