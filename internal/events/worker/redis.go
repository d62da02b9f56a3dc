package worker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type redisSource struct {
	rdb      *redis.Client
	stream   string
	group    string
	consumer string
	ready    bool
	// createGroup creates the consumer group and its stream if missing.
	createGroup func(ctx context.Context) error
}

func newRedisSource(o Options) (*redisSource, error) {
	url := o.RedisURL
	if url == "" {
		url = "redis://localhost:6379/0"
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	stream := o.Stream
	if stream == "" {
		stream = "catalog:events"
	}
	s := &redisSource{rdb: redis.NewClient(opt), stream: stream, group: o.Group, consumer: o.Consumer}
	s.createGroup = func(ctx context.Context) error {
		return s.rdb.XGroupCreateMkStream(ctx, s.stream, s.group, "$").Err()
	}
	return s, nil
}

// ensureGroup creates the group once. A failed attempt is retried on the
// next fetch; BUSYGROUP means the group already exists.
func (s *redisSource) ensureGroup(ctx context.Context) error {
	if s.ready {
		return nil
	}
	if err := s.createGroup(ctx); err != nil && !isBusyGroup(err) {
		return fmt.Errorf("create group %s on %s: %w", s.group, s.stream, err)
	}
	s.ready = true
	return nil
}

func isBusyGroup(err error) bool {
	return strings.HasPrefix(err.Error(), "BUSYGROUP")
}

func (s *redisSource) fetch(ctx context.Context) ([]delivery, error) {
	if err := s.ensureGroup(ctx); err != nil {
		return nil, err
	}
	res, err := s.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    s.group,
		Consumer: s.consumer,
		Streams:  []string{s.stream, ">"},
		Count:    100,
		Block:    2 * time.Second,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var out []delivery
	for _, str := range res {
		for _, msg := range str.Messages {
			id := msg.ID
			out = append(out, delivery{
				data:   []byte(fieldString(msg.Values["data"])),
				origin: s.stream + "/" + id,
				ack: func(ctx context.Context) error {
					return s.rdb.XAck(ctx, s.stream, s.group, id).Err()
				},
			})
		}
	}
	return out, nil
}

func (s *redisSource) close() error { return s.rdb.Close() }

func fieldString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(v)
	}
}
