package events

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type redisPublisher struct {
	cli          *redis.Client
	stream       string
	maxLen       int64
	maxLenApprox bool
}

// NewRedis appends events to a Redis stream with XADD.
func NewRedis(url, stream string, maxLen int64, approx bool) (Publisher, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if stream == "" {
		stream = "catalog:events"
	}
	return &redisPublisher{cli: redis.NewClient(opt), stream: stream, maxLen: maxLen, maxLenApprox: approx}, nil
}

func (q *redisPublisher) Close() error { return q.cli.Close() }

func (q *redisPublisher) Publish(evt Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	// Store as single field 'data' with JSON body for schema flexibility
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	args := &redis.XAddArgs{Stream: q.stream, Values: map[string]any{"type": evt.Type, "data": string(b)}}
	if q.maxLen > 0 {
		args.MaxLen = q.maxLen
		args.Approx = q.maxLenApprox
	}
	return q.cli.XAdd(ctx, args).Err()
}
