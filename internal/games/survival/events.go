package survival

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventJump EventKind = iota
	EventLand
	EventHit
	EventDodge
	EventSpawn
	EventGameOver
)

var eventNames = [...]string{
	EventJump:     "jump",
	EventLand:     "land",
	EventHit:      "hit",
	EventDodge:    "dodge",
	EventSpawn:    "spawn",
	EventGameOver: "gameOver",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is a single occurrence reported by Tick.
// Obstacle is meaningful for hit, dodge and obstacle spawn events;
// Platform marks a platform spawn.
type Event struct {
	Kind     EventKind
	Obstacle ObstacleKind
	Platform bool
}

// TickResult summarises one call to Tick.
type TickResult struct {
	Phase      Phase
	Score      int
	Health     int
	Events     []Event
	Restarted  bool
	GameOver   bool // Set only on the tick the session ended
	FinalScore int  // Valid when GameOver is set
}

func (r *TickResult) add(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns how many events of kind k the tick produced.
func (r TickResult) Count(k EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// SoundSink receives tick events in place of a sound engine.
type SoundSink interface {
	Play(e Event)
}

// NopSound discards every event.
type NopSound struct{}

// Play implements SoundSink.
func (NopSound) Play(Event) {}
