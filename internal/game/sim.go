package game

import "fmt"

// Sim is the simulation core. It owns the live bubble collection, the
// spawn controller and the scoring state, and advances them one tick at
// a time. Observers watch through the event bus and the render buffers;
// nothing outside the tick mutates simulation state.
type Sim struct {
	Tun     Tuning
	Bubbles *BubbleSystem
	Spawner *SpawnController
	Score   ScoreState
	Bus     *EventBus

	Elapsed float64 // session time of the latest tick

	hits  []queuedHit
	swept []Bubble
}

type queuedHit struct {
	id uint64
	at float64
}

// NewSim validates the tuning and builds an empty session. Call
// SeedSession once observers are attached; the first tick may only run
// after a nil error here.
func NewSim(seed uint64, tun Tuning) (*Sim, error) {
	if err := tun.Validate(); err != nil {
		return nil, fmt.Errorf("tuning: %w", err)
	}
	return &Sim{
		Tun:     tun,
		Bubbles: NewBubbleSystem(),
		Spawner: NewSpawnController(seed, tun),
		Bus:     NewEventBus(),
	}, nil
}

// SeedSession pre-fills the viewport so the scene is populated from the
// first frame. Each seeded bubble emits EventSpawned.
func (s *Sim) SeedSession() {
	for _, b := range s.Spawner.SpawnSeeds() {
		sb := s.Bubbles.Add(b)
		s.Bus.Emit(Event{Type: EventSpawned, Bubble: sb})
	}
}

// QueueHit records a pop hit from the pointer collaborator. Hits are
// drained in arrival order during the next tick's resolution phase.
func (s *Sim) QueueHit(id uint64, at float64) {
	s.hits = append(s.hits, queuedHit{id: id, at: at})
}

// Tick advances the simulation one frame: spawn check, entity updates,
// despawn sweep, then pop resolution, strictly in that order so a pop
// always observes entities already advanced for this frame. dt is the
// frame delta in seconds; now is the absolute session time.
func (s *Sim) Tick(dt, now float64) {
	s.Elapsed = now

	if b, ok := s.Spawner.MaybeSpawn(now, s.Bubbles.LiveCount()); ok {
		sb := s.Bubbles.Add(b)
		s.Bus.Emit(Event{Type: EventSpawned, Bubble: sb})
	}

	s.Bubbles.Update(dt, now, s.Tun)

	s.swept = s.Bubbles.Sweep(s.swept[:0])
	for _, b := range s.swept {
		s.Bus.Emit(Event{Type: EventDespawned, Bubble: b})
	}

	// First hit on a bubble wins. Later hits against the same id land
	// after the removal and fall through as stale no-ops.
	for _, h := range s.hits {
		b, ok := s.Bubbles.Remove(h.id)
		if !ok {
			continue
		}
		delta, next, tier := resolvePop(b, h.at, s.Score, s.Tun)
		s.Score = next
		_, col := comboTier(next.Streak)
		s.Bus.Emit(Event{
			Type:       EventPopped,
			Bubble:     b,
			ScoreDelta: delta,
			Streak:     next.Streak,
			Tier:       tier,
			TierCol:    col,
		})
	}
	s.hits = s.hits[:0]
}
