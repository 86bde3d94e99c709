package game

type EventType int

const (
	EventSpawned EventType = iota
	EventPopped
	EventDespawned
)

// Event is one simulation notification. Bubble is a snapshot taken at
// emit time; the score fields are only set for EventPopped. Events flow
// one way, from the simulation to its observers.
type Event struct {
	Type       EventType
	Bubble     Bubble
	ScoreDelta int
	Streak     int
	Tier       string // "" below the combo threshold
	TierCol    RGB
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
