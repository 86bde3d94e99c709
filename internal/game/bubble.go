package game

import "math"

// Bubble is one floating entity. X is the displayed position; BaseX is
// the drift baseline the wobble oscillates around. Keeping them apart
// means the oscillation can never integrate into the drift.
type Bubble struct {
	ID     uint64
	X, Y   float64
	BaseX  float64
	VX, VY float64 // VY < 0: bubbles rise
	Radius float64

	WobbleSpeed  float64
	WobbleAmp    float64
	WobbleOffset float64
	BreathePhase float64
	Age          float64

	Hue   float64
	Scale float64 // breathing factor around 1.0
	Alive bool
}

// BubbleSystem owns the live collection. IDs are assigned on Add and
// never reused within a session; dead bubbles are compacted out by
// Sweep or removed directly by a resolved pop.
type BubbleSystem struct {
	B      []Bubble
	nextID uint64
}

func NewBubbleSystem() *BubbleSystem {
	return &BubbleSystem{B: make([]Bubble, 0, MaxBubbles+2)}
}

// Add inserts a bubble, assigns its id and returns the stored value.
func (bs *BubbleSystem) Add(b Bubble) Bubble {
	bs.nextID++
	b.ID = bs.nextID
	b.Alive = true
	if b.Scale == 0 {
		b.Scale = 1
	}
	bs.B = append(bs.B, b)
	return b
}

// LiveCount counts bubbles that have not been marked dead yet.
func (bs *BubbleSystem) LiveCount() int {
	n := 0
	for i := range bs.B {
		if bs.B[i].Alive {
			n++
		}
	}
	return n
}

// ByID returns a snapshot of the live bubble with the given id.
func (bs *BubbleSystem) ByID(id uint64) (Bubble, bool) {
	for i := range bs.B {
		if bs.B[i].Alive && bs.B[i].ID == id {
			return bs.B[i], true
		}
	}
	return Bubble{}, false
}

// Remove takes the live bubble with the given id out of the collection
// and returns it. A miss means the id already despawned or was popped.
func (bs *BubbleSystem) Remove(id uint64) (Bubble, bool) {
	for i := range bs.B {
		if !bs.B[i].Alive || bs.B[i].ID != id {
			continue
		}
		b := bs.B[i]
		last := len(bs.B) - 1
		bs.B[i] = bs.B[last]
		bs.B = bs.B[:last]
		return b, true
	}
	return Bubble{}, false
}

// Sweep compacts the collection, dropping every dead bubble. The removed
// bubbles are appended to out (pass a reused slice) so the caller can
// emit despawn notifications after the compaction.
func (bs *BubbleSystem) Sweep(out []Bubble) []Bubble {
	for i := 0; i < len(bs.B); {
		if bs.B[i].Alive {
			i++
			continue
		}
		out = append(out, bs.B[i])
		last := len(bs.B) - 1
		bs.B[i] = bs.B[last]
		bs.B = bs.B[:last]
	}
	return out
}

// RenderData appends one body sprite per live bubble to buf and returns
// it. Size is the breathing diameter; the bubble shader draws the shell,
// rim and highlight from the single sprite.
func (bs *BubbleSystem) RenderData(buf []float32) []float32 {
	for i := range bs.B {
		b := &bs.B[i]
		if !b.Alive {
			continue
		}
		sh := ShadeFromHue(b.Hue)
		size := float32(2 * b.Radius * b.Scale)
		buf = append(buf,
			float32(b.X), float32(b.Y), size,
			float32(sh.Body.R)/255, float32(sh.Body.G)/255, float32(sh.Body.B)/255,
			0.62, float32(b.WobbleOffset))
	}
	return buf
}

// GlowData appends a soft additive halo per live bubble. Intensity
// breathes slowly so the scene shimmers without distracting.
func (bs *BubbleSystem) GlowData(buf []float32) []float32 {
	for i := range bs.B {
		b := &bs.B[i]
		if !b.Alive {
			continue
		}
		sh := ShadeFromHue(b.Hue)
		intensity := float32(0.10 + 0.05*math.Sin(b.Age*2.0+b.BreathePhase))
		size := float32(3.2 * b.Radius * b.Scale)
		buf = append(buf,
			float32(b.X), float32(b.Y), size,
			float32(sh.Glow.R)/255*intensity,
			float32(sh.Glow.G)/255*intensity,
			float32(sh.Glow.B)/255*intensity,
			1, 0)
	}
	return buf
}
