// Package worker consumes catalog change events from Redis or Kafka and
// keeps a running tally per event type.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cuihairu/labcatalog/internal/events"
)

// Handler receives each decoded event. A handler error leaves the message
// unacknowledged so it is redelivered.
type Handler func(ctx context.Context, evt events.Event) error

// delivery is one raw message; origin names it in logs.
type delivery struct {
	data   []byte
	origin string
	ack    func(ctx context.Context) error
}

type source interface {
	fetch(ctx context.Context) ([]delivery, error)
	close() error
}

// Options selects the backend and consumer identity.
type Options struct {
	Type     string
	RedisURL string
	Stream   string
	Group    string
	Consumer string
	Brokers  []string
	Topic    string
	// Report is how often the tally is logged; zero disables reporting.
	Report time.Duration
}

type Worker struct {
	src    source
	handle Handler
	report time.Duration
	log    *slog.Logger

	mu    sync.Mutex
	tally map[string]int
}

// New connects to the configured backend. Only redis and kafka carry events
// between processes, so other types are rejected.
func New(o Options, h Handler, log *slog.Logger) (*Worker, error) {
	if o.Group == "" {
		o.Group = "catalog-worker"
	}
	if o.Consumer == "" {
		o.Consumer = fmt.Sprintf("c-%d", time.Now().UnixNano())
	}
	if log == nil {
		log = slog.Default()
	}
	var (
		src source
		err error
	)
	switch strings.ToLower(strings.TrimSpace(o.Type)) {
	case "redis":
		src, err = newRedisSource(o)
	case "kafka":
		src, err = newKafkaSource(o)
	default:
		return nil, fmt.Errorf("events backend %q cannot be consumed; use redis or kafka", o.Type)
	}
	if err != nil {
		return nil, err
	}
	return newWorker(src, h, o.Report, log), nil
}

func newWorker(src source, h Handler, report time.Duration, log *slog.Logger) *Worker {
	if log == nil {
		log = slog.Default()
	}
	if h == nil {
		h = func(context.Context, events.Event) error { return nil }
	}
	return &Worker{src: src, handle: h, report: report, log: log, tally: map[string]int{}}
}

// Run consumes until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	defer w.src.close()
	if w.report > 0 {
		go w.reportLoop(ctx)
	}
	for {
		if ctx.Err() != nil {
			return nil
		}
		batch, err := w.src.fetch(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			w.log.Warn("fetch events", "err", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}
		for _, d := range batch {
			w.process(ctx, d)
		}
	}
}

func (w *Worker) process(ctx context.Context, d delivery) {
	evt, err := decode(d.data)
	if err != nil {
		w.log.Warn("skip catalog event", "from", d.origin, "err", err)
		w.ack(ctx, d, "")
		return
	}
	if err := w.handle(ctx, evt); err != nil {
		w.log.Warn("handle event", "type", evt.Type, "id", evt.ID, "err", err)
		return
	}
	w.mu.Lock()
	w.tally[evt.Type]++
	w.mu.Unlock()
	w.ack(ctx, d, evt.Type)
}

func (w *Worker) ack(ctx context.Context, d delivery, typ string) {
	if d.ack == nil {
		return
	}
	if err := d.ack(ctx); err != nil {
		w.log.Warn("ack event", "from", d.origin, "type", typ, "err", err)
	}
}

func (w *Worker) reportLoop(ctx context.Context) {
	tk := time.NewTicker(w.report)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			for _, line := range w.Summary() {
				w.log.Info("catalog events", "type", line.Type, "count", line.Count)
			}
		}
	}
}

// Count is one row of the tally.
type Count struct {
	Type  string
	Count int
}

// Summary returns the tally sorted by event type.
func (w *Worker) Summary() []Count {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Count, 0, len(w.tally))
	for t, n := range w.tally {
		out = append(out, Count{Type: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// decode reads the JSON body a publisher stored for one event.
func decode(data []byte) (events.Event, error) {
	var evt events.Event
	if len(data) == 0 {
		return evt, errors.New("empty event payload")
	}
	if err := json.Unmarshal(data, &evt); err != nil {
		return evt, fmt.Errorf("decode event: %w", err)
	}
	if evt.Type == "" {
		return evt, errors.New("event without type")
	}
	return evt, nil
}
