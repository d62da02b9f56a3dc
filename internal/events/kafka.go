package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafka "github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	w *kafka.Writer
}

// NewKafka writes events to one topic keyed by event type.
func NewKafka(brokers []string, topic string) (Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	if topic == "" {
		topic = "catalog.events"
	}
	// Writers are safe for concurrent use
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireOne,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}
	return &kafkaPublisher{w: w}, nil
}

func (q *kafkaPublisher) Close() error { return q.w.Close() }

func (q *kafkaPublisher) Publish(evt Event) error {
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return q.w.WriteMessages(ctx, kafka.Message{Key: []byte(evt.Type), Value: b})
}
