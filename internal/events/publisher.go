package events

import (
	"fmt"
	"time"
)

// Event describes a committed catalog mutation.
type Event struct {
	Type   string    `json:"type"`
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     uint      `json:"id"`
	Name   string    `json:"name,omitempty"`
	At     time.Time `json:"at"`
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// New builds an event of type "<entity>.<action>" stamped with at.
func New(entity, action string, id uint, name string, at time.Time) Event {
	return Event{
		Type:   fmt.Sprintf("%s.%s", entity, action),
		Entity: entity,
		Action: action,
		ID:     id,
		Name:   name,
		At:     at.UTC(),
	}
}

// Publisher ships catalog events to a message queue.
// Implementations can be backed by Kafka, Redis Streams, or a no-op for dev.
type Publisher interface {
	Publish(evt Event) error
	Close() error
}
