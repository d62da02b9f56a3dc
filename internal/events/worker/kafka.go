package worker

import (
	"context"
	"fmt"

	kafka "github.com/segmentio/kafka-go"
)

type kafkaSource struct {
	r *kafka.Reader
}

func newKafkaSource(o Options) (*kafkaSource, error) {
	if len(o.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	topic := o.Topic
	if topic == "" {
		topic = "catalog.events"
	}
	return &kafkaSource{r: kafka.NewReader(kafka.ReaderConfig{
		Brokers: o.Brokers,
		GroupID: o.Group,
		Topic:   topic,
	})}, nil
}

// fetch returns one message at a time; offsets are committed on ack.
func (s *kafkaSource) fetch(ctx context.Context) ([]delivery, error) {
	m, err := s.r.FetchMessage(ctx)
	if err != nil {
		return nil, err
	}
	return []delivery{{
		data:   m.Value,
		origin: fmt.Sprintf("%s/%d@%d", m.Topic, m.Partition, m.Offset),
		ack:    func(ctx context.Context) error { return s.r.CommitMessages(ctx, m) },
	}}, nil
}

func (s *kafkaSource) close() error { return s.r.Close() }
