package catalog

import (
	"context"

	"github.com/cuihairu/labcatalog/internal/events"
	dom "github.com/cuihairu/labcatalog/internal/ports"
)

func (s *Service) CreatePublisher(ctx context.Context, in CompanyInput) (*CompanyView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	p := &dom.Publisher{Name: in.Name, Country: in.Country, FoundedYear: in.FoundedYear}
	err := s.run(ctx, "publisher.create", func(ctx context.Context) error {
		taken, err := s.publishers.ExistsByName(ctx, in.Name)
		if err != nil {
			return err
		}
		if taken {
			return dom.Conflictf("Publisher with name '%s' already exists", in.Name)
		}
		return s.publishers.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, entityPublisher, events.ActionCreated, p.ID, p.Name)
	return publisherView(p, 0), nil
}

// ListPublishers returns every publisher with its derived games count.
func (s *Service) ListPublishers(ctx context.Context) ([]*CompanyView, error) {
	var out []*CompanyView
	err := s.run(ctx, "publisher.list", func(ctx context.Context) error {
		arr, err := s.publishers.List(ctx)
		if err != nil {
			return err
		}
		out = make([]*CompanyView, 0, len(arr))
		for _, p := range arr {
			n, err := s.games.CountByPublisher(ctx, p.ID)
			if err != nil {
				return err
			}
			out = append(out, publisherView(p, n))
		}
		return nil
	})
	return out, err
}

func (s *Service) GetPublisher(ctx context.Context, id uint) (*CompanyView, error) {
	var out *CompanyView
	err := s.run(ctx, "publisher.get", func(ctx context.Context) error {
		p, err := s.publishers.Get(ctx, id)
		if err != nil {
			return lookupErr(err, "Publisher", id)
		}
		n, err := s.games.CountByPublisher(ctx, id)
		if err != nil {
			return err
		}
		out = publisherView(p, n)
		return nil
	})
	return out, err
}

// UpdatePublisher replaces name, country and founded year. Uniqueness is
// re-checked only when the name changes.
func (s *Service) UpdatePublisher(ctx context.Context, id uint, in CompanyInput) (*CompanyView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var out *CompanyView
	err := s.run(ctx, "publisher.update", func(ctx context.Context) error {
		p, err := s.publishers.Get(ctx, id)
		if err != nil {
			return lookupErr(err, "Publisher", id)
		}
		if p.Name != in.Name {
			taken, err := s.publishers.ExistsByName(ctx, in.Name)
			if err != nil {
				return err
			}
			if taken {
				return dom.Conflictf("Publisher with name '%s' already exists", in.Name)
			}
		}
		p.Name, p.Country, p.FoundedYear = in.Name, in.Country, in.FoundedYear
		if err := s.publishers.Update(ctx, p); err != nil {
			return err
		}
		n, err := s.games.CountByPublisher(ctx, id)
		if err != nil {
			return err
		}
		out = publisherView(p, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, entityPublisher, events.ActionUpdated, out.ID, out.Name)
	return out, nil
}

// DeletePublisher refuses while any game still references the publisher.
func (s *Service) DeletePublisher(ctx context.Context, id uint) error {
	var name string
	err := s.run(ctx, "publisher.delete", func(ctx context.Context) error {
		p, err := s.publishers.Get(ctx, id)
		if err != nil {
			return lookupErr(err, "Publisher", id)
		}
		n, err := s.games.CountByPublisher(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return dom.Conflictf("Cannot delete publisher: %d games are associated with this publisher", n)
		}
		name = p.Name
		return s.publishers.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.emit(ctx, entityPublisher, events.ActionDeleted, id, name)
	return nil
}
