package core

// Event is a discrete input or timer event consumed by the engine.
// The set is closed: directional keys, menu keys and the tick itself.
type Event int

const (
	EventTick Event = iota
	EventUp
	EventDown
	EventLeft
	EventRight
	EventSelect
	EventBack
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventTick:
		return "Tick"
	case EventUp:
		return "Up"
	case EventDown:
		return "Down"
	case EventLeft:
		return "Left"
	case EventRight:
		return "Right"
	case EventSelect:
		return "Select"
	case EventBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for directional events,
// and false for every other event.
func (e Event) Direction() (Direction, bool) {
	switch e {
	case EventUp:
		return North, true
	case EventDown:
		return South, true
	case EventLeft:
		return West, true
	case EventRight:
		return East, true
	default:
		return None, false
	}
}

// EventQueue is a FIFO of pending input events.
type EventQueue struct {
	events []Event
}

// Push appends an event to the back of the queue.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Pop removes and returns the oldest event.
// Returns false when the queue is empty.
func (q *EventQueue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return EventTick, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Clear drops all pending events.
func (q *EventQueue) Clear() {
	q.events = q.events[:0]
}
