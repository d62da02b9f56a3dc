package catalog

import (
	"context"
	"time"

	"github.com/cuihairu/labcatalog/internal/events"
	dom "github.com/cuihairu/labcatalog/internal/ports"
	"github.com/zeromicro/go-zero/core/logx"
)

// Repositories groups the four catalog repositories a Service works on.
type Repositories struct {
	Developers dom.DeveloperRepository
	Publishers dom.PublisherRepository
	Genres     dom.GenreRepository
	Games      dom.VideoGameRepository
}

// OpRecorder observes the outcome of every catalog operation.
type OpRecorder interface {
	RecordOp(ctx context.Context, op string, err error)
}

// Service enforces the catalog rules on top of the repositories. Each
// operation runs in one unit of work; change events go out after commit.
type Service struct {
	uow        dom.UnitOfWork
	developers dom.DeveloperRepository
	publishers dom.PublisherRepository
	genres     dom.GenreRepository
	games      dom.VideoGameRepository
	events     events.Publisher
	recorder   OpRecorder
	now        func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now; release-year checks depend on it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.events = p
		}
	}
}

func WithRecorder(r OpRecorder) Option {
	return func(s *Service) { s.recorder = r }
}

func NewService(uow dom.UnitOfWork, repos Repositories, opts ...Option) *Service {
	s := &Service{
		uow:        uow,
		developers: repos.Developers,
		publishers: repos.Publishers,
		genres:     repos.Genres,
		games:      repos.Games,
		events:     events.NewNoop(),
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// run executes fn inside a unit of work and reports the outcome.
func (s *Service) run(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	err := s.uow.Do(ctx, fn)
	if s.recorder != nil {
		s.recorder.RecordOp(ctx, op, err)
	}
	return err
}

// emit publishes a change event. Failures are logged, never returned.
func (s *Service) emit(ctx context.Context, entity, action string, id uint, name string) {
	evt := events.New(entity, action, id, name, s.now())
	if err := s.events.Publish(evt); err != nil {
		logx.WithContext(ctx).Errorf("[catalog] publish %s id=%d: %v", evt.Type, id, err)
	}
}
