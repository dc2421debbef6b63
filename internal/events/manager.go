package events

import (
	"container/heap"

	"github.com/feralgames/go-wolfpack/internal/game"
	"github.com/google/uuid"
)

// Manager holds pending events in a priority queue. Events with the
// numerically smallest priority are served first; ties are broken by
// insertion order so processing is deterministic.
type Manager struct {
	queue eventHeap
	seq   uint64
}

// NewManager creates an empty event queue.
func NewManager() *Manager {
	return &Manager{}
}

// Add inserts an event into the queue.
func (m *Manager) Add(ev Event) {
	if ev.InstanceId == "" {
		ev.InstanceId = uuid.New().String()
	}
	m.seq++
	heap.Push(&m.queue, &queuedEvent{event: ev, seq: m.seq})
}

// AddEvent inserts an event with no stat effect. This is the injection
// point for externally authored content.
func (m *Manager) AddEvent(title, desc string, priority int) {
	m.Add(Event{
		Title:       title,
		Description: desc,
		Priority:    priority,
	})
}

// Peek returns the most urgent pending event without removing it.
// Returns ErrNoPendingEvents if the queue is empty.
func (m *Manager) Peek() (Event, error) {
	if m.queue.Len() == 0 {
		return Event{}, ErrNoPendingEvents
	}
	return m.queue[0].event, nil
}

// ProcessNext removes the most urgent pending event, applies its effect
// to the wolf, and returns the consumed event. Returns
// ErrNoPendingEvents if the queue is empty.
func (m *Manager) ProcessNext(w *game.Wolf) (Event, error) {
	if m.queue.Len() == 0 {
		return Event{}, ErrNoPendingEvents
	}
	qe := heap.Pop(&m.queue).(*queuedEvent)
	w.ApplyEffect(qe.event.Effect)
	return qe.event, nil
}

// HasPending reports whether any events are queued.
func (m *Manager) HasPending() bool {
	return m.queue.Len() > 0
}

// Len returns the number of queued events.
func (m *Manager) Len() int {
	return m.queue.Len()
}

// queuedEvent pairs an event with its insertion sequence number.
type queuedEvent struct {
	event Event
	seq   uint64
}

// eventHeap is a min-heap by (priority, seq).
type eventHeap []*queuedEvent

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].event.Priority != h[j].event.Priority {
		return h[i].event.Priority < h[j].event.Priority
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(*queuedEvent))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	qe := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return qe
}
