package events

import "sync"

type Noop struct{}

func NewNoop() *Noop                { return &Noop{} }
func (n *Noop) Publish(Event) error { return nil }
func (n *Noop) Close() error        { return nil }

// Memory keeps published events in order; used by tests and the dev profile.
type Memory struct {
	mu     sync.Mutex
	events []Event
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Publish(evt Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, evt)
	return nil
}

func (m *Memory) Close() error { return nil }

// Events returns a copy of everything published so far.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}
