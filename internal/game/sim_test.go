package game

import "testing"

func newTestSim(t *testing.T, seed uint64) *Sim {
	t.Helper()
	s, err := NewSim(seed, DefaultTuning())
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	return s
}

func TestSeedSessionPopulatesScene(t *testing.T) {
	s := newTestSim(t, 5)

	spawns := 0
	s.Bus.Subscribe(EventSpawned, func(Event) { spawns++ })

	s.SeedSession()
	if got := s.Bubbles.LiveCount(); got != s.Tun.SeedBubbles {
		t.Fatalf("live count after seeding = %d, want %d", got, s.Tun.SeedBubbles)
	}
	if spawns != s.Tun.SeedBubbles {
		t.Fatalf("spawn events = %d, want %d", spawns, s.Tun.SeedBubbles)
	}
}

func TestTickSpawnsOnCadence(t *testing.T) {
	s := newTestSim(t, 6)

	dt := 1.0 / 60.0
	now := 0.0
	for i := 0; i < 60; i++ {
		now += dt
		s.Tick(dt, now)
	}
	if got := s.Bubbles.LiveCount(); got != 1 {
		t.Fatalf("live count after 1s = %d, want 1 (first spawn lands at the interval)", got)
	}
}

func TestPopulationNeverExceedsCap(t *testing.T) {
	tun := DefaultTuning()
	tun.SpawnInterval = 0.05
	s, err := NewSim(8, tun)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}

	maxSeen := 0
	dt := 1.0 / 60.0
	now := 0.0
	for i := 0; i < 600; i++ {
		now += dt
		s.Tick(dt, now)
		n := s.Bubbles.LiveCount()
		if n > tun.MaxBubbles {
			t.Fatalf("live count %d exceeds the cap %d at t=%v", n, tun.MaxBubbles, now)
		}
		if n > maxSeen {
			maxSeen = n
		}
	}
	if maxSeen != tun.MaxBubbles {
		t.Fatalf("population never reached the cap under a fast interval: max %d", maxSeen)
	}
}

func TestQueuedHitPopsOnNextTick(t *testing.T) {
	s := newTestSim(t, 5)
	s.SeedSession()

	var pops []Event
	s.Bus.Subscribe(EventPopped, func(e Event) { pops = append(pops, e) })

	target := s.Bubbles.B[3]
	s.QueueHit(target.ID, 0.01)
	s.Tick(1.0/60.0, 1.0/60.0)

	if len(pops) != 1 {
		t.Fatalf("pop events = %d, want 1", len(pops))
	}
	e := pops[0]
	if e.Bubble.ID != target.ID {
		t.Fatalf("popped id = %d, want %d", e.Bubble.ID, target.ID)
	}
	if e.ScoreDelta != basePoints(target.Radius, s.Tun) {
		t.Fatalf("first pop delta = %d, want %d", e.ScoreDelta, basePoints(target.Radius, s.Tun))
	}
	if e.Streak != 1 || e.Tier != "" {
		t.Fatalf("first pop streak/tier = %d/%q, want 1 with no tier", e.Streak, e.Tier)
	}
	if s.Score.TotalPopped != 1 {
		t.Fatalf("TotalPopped = %d, want 1", s.Score.TotalPopped)
	}
	if _, ok := s.Bubbles.ByID(target.ID); ok {
		t.Fatalf("popped bubble still in the collection")
	}
}

func TestDoubleTapSecondHitIsStale(t *testing.T) {
	s := newTestSim(t, 5)
	s.SeedSession()

	pops := 0
	s.Bus.Subscribe(EventPopped, func(Event) { pops++ })

	id := s.Bubbles.B[0].ID
	s.QueueHit(id, 0.010)
	s.QueueHit(id, 0.012)
	s.Tick(1.0/60.0, 1.0/60.0)

	if pops != 1 {
		t.Fatalf("pop events = %d, want 1 (first hit wins)", pops)
	}
	if s.Score.TotalPopped != 1 {
		t.Fatalf("TotalPopped = %d, want 1", s.Score.TotalPopped)
	}
}

func TestHitOnUnknownIDIsNoOp(t *testing.T) {
	s := newTestSim(t, 5)
	s.SeedSession()

	pops := 0
	s.Bus.Subscribe(EventPopped, func(Event) { pops++ })

	s.QueueHit(999999, 0.01)
	s.Tick(1.0/60.0, 1.0/60.0)

	if pops != 0 || s.Score.TotalScore != 0 {
		t.Fatalf("stale hit scored: events=%d total=%d", pops, s.Score.TotalScore)
	}
}

func TestSweepRunsBeforeHitResolution(t *testing.T) {
	s := newTestSim(t, 5)
	s.SeedSession()

	popped, despawned := 0, 0
	s.Bus.Subscribe(EventPopped, func(Event) { popped++ })
	s.Bus.Subscribe(EventDespawned, func(Event) { despawned++ })

	// Park the target fully above the top edge so this tick despawns it,
	// then race a hit against it.
	id := s.Bubbles.B[0].ID
	s.Bubbles.B[0].Y = -(s.Bubbles.B[0].Radius + 1)
	s.QueueHit(id, 0.01)
	s.Tick(1.0/60.0, 1.0/60.0)

	if despawned != 1 {
		t.Fatalf("despawn events = %d, want 1", despawned)
	}
	if popped != 0 {
		t.Fatalf("a hit landed on a bubble that despawned the same tick")
	}
	if s.Score.TotalPopped != 0 {
		t.Fatalf("TotalPopped = %d, want 0", s.Score.TotalPopped)
	}
}

func TestStreakCarriesAcrossTicks(t *testing.T) {
	s := newTestSim(t, 12)
	s.SeedSession()

	var events []Event
	s.Bus.Subscribe(EventPopped, func(e Event) { events = append(events, e) })

	targets := []Bubble{s.Bubbles.B[0], s.Bubbles.B[1], s.Bubbles.B[2]}
	dt := 1.0 / 60.0
	now := 0.0
	for _, b := range targets {
		now += dt
		s.QueueHit(b.ID, now)
		s.Tick(dt, now)
	}

	if len(events) != 3 {
		t.Fatalf("pop events = %d, want 3", len(events))
	}
	if events[1].Streak != 2 {
		t.Fatalf("second pop streak = %d, want 2", events[1].Streak)
	}
	last := events[2]
	if last.Streak != 3 {
		t.Fatalf("third pop streak = %d, want 3", last.Streak)
	}
	if last.Tier != "NICE!" {
		t.Fatalf("third pop tier = %q, want NICE!", last.Tier)
	}
	if last.TierCol != (RGB{R: 120, G: 230, B: 170}) {
		t.Fatalf("third pop tier color = %+v", last.TierCol)
	}
	if want := basePoints(targets[2].Radius, s.Tun) * 3; last.ScoreDelta != want {
		t.Fatalf("third pop delta = %d, want %d", last.ScoreDelta, want)
	}
}
