package events

import (
	"testing"
	"time"
)

func TestNewEvent(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	evt := New("genre", ActionCreated, 7, "Action", at)
	if evt.Type != "genre.created" {
		t.Fatalf("unexpected type %s", evt.Type)
	}
	if evt.At.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp")
	}
}

func TestNewFromConfig(t *testing.T) {
	if _, ok := NewFromConfig(Config{}).(*Noop); !ok {
		t.Fatalf("empty type should be noop")
	}
	if _, ok := NewFromConfig(Config{Type: "memory"}).(*Memory); !ok {
		t.Fatalf("memory type should be memory")
	}
	if _, ok := NewFromConfig(Config{Type: "kafka"}).(*Noop); !ok {
		t.Fatalf("kafka without brokers should fall back to noop")
	}
	if _, ok := NewFromConfig(Config{Type: "redis", RedisURL: "://bad"}).(*Noop); !ok {
		t.Fatalf("bad redis url should fall back to noop")
	}
	if _, ok := NewFromConfig(Config{Type: "amqp"}).(*Noop); !ok {
		t.Fatalf("unknown type should fall back to noop")
	}
}

func TestMemoryKeepsOrder(t *testing.T) {
	m := NewMemory()
	_ = m.Publish(Event{Type: "a"})
	_ = m.Publish(Event{Type: "b"})
	got := m.Events()
	if len(got) != 2 || got[0].Type != "a" || got[1].Type != "b" {
		t.Fatalf("unexpected events %+v", got)
	}
}
