package catalog

import (
	"context"
	"errors"

	"github.com/cuihairu/labcatalog/internal/events"
	dom "github.com/cuihairu/labcatalog/internal/ports"
)

const (
	entityDeveloper = "developer"
	entityPublisher = "publisher"
	entityGenre     = "genre"
	entityGame      = "videogame"
)

// lookupErr turns a repository miss into the NotFoundError for entity.
func lookupErr(err error, entity string, id uint) error {
	if errors.Is(err, dom.ErrRecordNotFound) {
		return dom.NotFoundf("%s with id %d not found", entity, id)
	}
	return err
}

func (s *Service) CreateDeveloper(ctx context.Context, in CompanyInput) (*CompanyView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	d := &dom.Developer{Name: in.Name, Country: in.Country, FoundedYear: in.FoundedYear}
	err := s.run(ctx, "developer.create", func(ctx context.Context) error {
		taken, err := s.developers.ExistsByName(ctx, in.Name)
		if err != nil {
			return err
		}
		if taken {
			return dom.Conflictf("Developer with name '%s' already exists", in.Name)
		}
		return s.developers.Create(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, entityDeveloper, events.ActionCreated, d.ID, d.Name)
	return developerView(d, 0), nil
}

// ListDevelopers returns every developer with its derived games count.
func (s *Service) ListDevelopers(ctx context.Context) ([]*CompanyView, error) {
	var out []*CompanyView
	err := s.run(ctx, "developer.list", func(ctx context.Context) error {
		arr, err := s.developers.List(ctx)
		if err != nil {
			return err
		}
		out = make([]*CompanyView, 0, len(arr))
		for _, d := range arr {
			n, err := s.games.CountByDeveloper(ctx, d.ID)
			if err != nil {
				return err
			}
			out = append(out, developerView(d, n))
		}
		return nil
	})
	return out, err
}

func (s *Service) GetDeveloper(ctx context.Context, id uint) (*CompanyView, error) {
	var out *CompanyView
	err := s.run(ctx, "developer.get", func(ctx context.Context) error {
		d, err := s.developers.Get(ctx, id)
		if err != nil {
			return lookupErr(err, "Developer", id)
		}
		n, err := s.games.CountByDeveloper(ctx, id)
		if err != nil {
			return err
		}
		out = developerView(d, n)
		return nil
	})
	return out, err
}

// UpdateDeveloper replaces name, country and founded year. Uniqueness is
// re-checked only when the name changes.
func (s *Service) UpdateDeveloper(ctx context.Context, id uint, in CompanyInput) (*CompanyView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var out *CompanyView
	err := s.run(ctx, "developer.update", func(ctx context.Context) error {
		d, err := s.developers.Get(ctx, id)
		if err != nil {
			return lookupErr(err, "Developer", id)
		}
		if d.Name != in.Name {
			taken, err := s.developers.ExistsByName(ctx, in.Name)
			if err != nil {
				return err
			}
			if taken {
				return dom.Conflictf("Developer with name '%s' already exists", in.Name)
			}
		}
		d.Name, d.Country, d.FoundedYear = in.Name, in.Country, in.FoundedYear
		if err := s.developers.Update(ctx, d); err != nil {
			return err
		}
		n, err := s.games.CountByDeveloper(ctx, id)
		if err != nil {
			return err
		}
		out = developerView(d, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, entityDeveloper, events.ActionUpdated, out.ID, out.Name)
	return out, nil
}

// DeleteDeveloper refuses while any game still references the developer.
func (s *Service) DeleteDeveloper(ctx context.Context, id uint) error {
	var name string
	err := s.run(ctx, "developer.delete", func(ctx context.Context) error {
		d, err := s.developers.Get(ctx, id)
		if err != nil {
			return lookupErr(err, "Developer", id)
		}
		n, err := s.games.CountByDeveloper(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return dom.Conflictf("Cannot delete developer: %d games are associated with this developer", n)
		}
		name = d.Name
		return s.developers.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.emit(ctx, entityDeveloper, events.ActionDeleted, id, name)
	return nil
}
