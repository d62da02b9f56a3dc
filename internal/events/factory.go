package events

import (
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

// Config selects and configures the event backend.
type Config struct {
	Type         string   `json:",default=noop,options=noop|memory|redis|kafka"`
	RedisURL     string   `json:",optional"`
	Stream       string   `json:",optional"`
	MaxLen       int64    `json:",optional"`
	MaxLenApprox bool     `json:",optional"`
	Brokers      []string `json:",optional"`
	Topic        string   `json:",optional"`
}

// NewFromConfig builds a Publisher for c.Type. Misconfigured backends fall
// back to noop so the catalog keeps serving.
func NewFromConfig(c Config) Publisher {
	switch strings.ToLower(strings.TrimSpace(c.Type)) {
	case "redis":
		url := c.RedisURL
		if url == "" {
			url = "redis://localhost:6379/0"
		}
		p, err := NewRedis(url, c.Stream, c.MaxLen, c.MaxLenApprox)
		if err != nil {
			logx.Errorf("[catalog-events] redis: %v; using noop", err)
			return NewNoop()
		}
		logx.Infof("[catalog-events] redis publisher enabled: stream=%s", c.Stream)
		return p
	case "kafka":
		p, err := NewKafka(c.Brokers, c.Topic)
		if err != nil {
			logx.Errorf("[catalog-events] %v; using noop", err)
			return NewNoop()
		}
		logx.Infof("[catalog-events] kafka publisher enabled: brokers=%s topic=%s", strings.Join(c.Brokers, ","), c.Topic)
		return p
	case "memory":
		return NewMemory()
	case "", "noop":
		return NewNoop()
	default:
		logx.Errorf("[catalog-events] unsupported type %q; using noop", c.Type)
		return NewNoop()
	}
}
