package dialogue

// Tracker owns the ordered event log of a single conversation. The
// featurization layer only ever reads it.
type Tracker struct {
	SenderID string

	events []Event
}

// NewTracker creates an empty tracker for the given conversation id.
func NewTracker(senderID string) *Tracker {
	return &Tracker{SenderID: senderID}
}

// FromEvents builds a tracker from an explicit event list. The list is
// copied so later appends by the caller do not alias the tracker.
func FromEvents(senderID string, events []Event) *Tracker {
	t := NewTracker(senderID)
	t.events = append(t.events, events...)
	return t
}

// Update appends an event. Events are immutable values, appending is the
// only permitted mutation.
func (t *Tracker) Update(ev Event) {
	t.events = append(t.events, ev)
}

// Events returns a snapshot of the event log.
func (t *Tracker) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Copy returns a tracker with an independent event list. Updating the copy
// never mutates the original.
func (t *Tracker) Copy() *Tracker {
	return FromEvents(t.SenderID, t.events)
}
