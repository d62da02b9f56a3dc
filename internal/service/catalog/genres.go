package catalog

import (
	"context"

	"github.com/cuihairu/labcatalog/internal/events"
	dom "github.com/cuihairu/labcatalog/internal/ports"
)

// CreateGenre stores the normalized name; "action" and "Action" collide.
func (s *Service) CreateGenre(ctx context.Context, in GenreInput) (*GenreView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	g := &dom.Genre{Name: NormalizeGenreName(in.Name), Description: in.Description}
	err := s.run(ctx, "genre.create", func(ctx context.Context) error {
		if err := s.ensureGenreNameFree(ctx, g.Name); err != nil {
			return err
		}
		return s.genres.Create(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, entityGenre, events.ActionCreated, g.ID, g.Name)
	return genreView(g, 0), nil
}

func (s *Service) ensureGenreNameFree(ctx context.Context, name string) error {
	taken, err := s.genres.ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if taken {
		return dom.Conflictf("Genre with name '%s' already exists", name)
	}
	return nil
}

func (s *Service) ListGenres(ctx context.Context) ([]*GenreView, error) {
	var out []*GenreView
	err := s.run(ctx, "genre.list", func(ctx context.Context) error {
		arr, err := s.genres.List(ctx)
		if err != nil {
			return err
		}
		out = make([]*GenreView, 0, len(arr))
		for _, g := range arr {
			n, err := s.games.CountByGenre(ctx, g.ID)
			if err != nil {
				return err
			}
			out = append(out, genreView(g, n))
		}
		return nil
	})
	return out, err
}

func (s *Service) GetGenre(ctx context.Context, id uint) (*GenreView, error) {
	var out *GenreView
	err := s.run(ctx, "genre.get", func(ctx context.Context) error {
		g, err := s.genres.Get(ctx, id)
		if err != nil {
			return lookupErr(err, "Genre", id)
		}
		n, err := s.games.CountByGenre(ctx, id)
		if err != nil {
			return err
		}
		out = genreView(g, n)
		return nil
	})
	return out, err
}

func (s *Service) UpdateGenre(ctx context.Context, id uint, in GenreInput) (*GenreView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	name := NormalizeGenreName(in.Name)
	var out *GenreView
	err := s.run(ctx, "genre.update", func(ctx context.Context) error {
		g, err := s.genres.Get(ctx, id)
		if err != nil {
			return lookupErr(err, "Genre", id)
		}
		if g.Name != name {
			if err := s.ensureGenreNameFree(ctx, name); err != nil {
				return err
			}
		}
		g.Name, g.Description = name, in.Description
		if err := s.genres.Update(ctx, g); err != nil {
			return err
		}
		n, err := s.games.CountByGenre(ctx, id)
		if err != nil {
			return err
		}
		out = genreView(g, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, entityGenre, events.ActionUpdated, out.ID, out.Name)
	return out, nil
}

func (s *Service) DeleteGenre(ctx context.Context, id uint) error {
	var name string
	err := s.run(ctx, "genre.delete", func(ctx context.Context) error {
		g, err := s.genres.Get(ctx, id)
		if err != nil {
			return lookupErr(err, "Genre", id)
		}
		n, err := s.games.CountByGenre(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return dom.Conflictf("Cannot delete genre: %d games belong to this genre", n)
		}
		name = g.Name
		return s.genres.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.emit(ctx, entityGenre, events.ActionDeleted, id, name)
	return nil
}
