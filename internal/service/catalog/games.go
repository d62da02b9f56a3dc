package catalog

import (
	"context"
	"strings"

	"github.com/cuihairu/labcatalog/internal/events"
	dom "github.com/cuihairu/labcatalog/internal/ports"
)

// refs holds the resolved references of a game write.
type refs struct {
	developer *dom.Developer
	publisher *dom.Publisher
	genre     *dom.Genre
}

// resolveRefs loads each non-nil id in developer, publisher, genre order.
func (s *Service) resolveRefs(ctx context.Context, developerID, publisherID, genreID *uint) (refs, error) {
	var out refs
	var err error
	if developerID != nil {
		if out.developer, err = s.developers.Get(ctx, *developerID); err != nil {
			return out, lookupErr(err, "Developer", *developerID)
		}
	}
	if publisherID != nil {
		if out.publisher, err = s.publishers.Get(ctx, *publisherID); err != nil {
			return out, lookupErr(err, "Publisher", *publisherID)
		}
	}
	if genreID != nil {
		if out.genre, err = s.genres.Get(ctx, *genreID); err != nil {
			return out, lookupErr(err, "Genre", *genreID)
		}
	}
	return out, nil
}

func (r refs) apply(g *dom.VideoGame) {
	if r.developer != nil {
		g.DeveloperID, g.Developer = r.developer.ID, *r.developer
	}
	if r.publisher != nil {
		g.PublisherID, g.Publisher = r.publisher.ID, *r.publisher
	}
	if r.genre != nil {
		g.GenreID, g.Genre = r.genre.ID, *r.genre
	}
}

func (s *Service) CreateVideoGame(ctx context.Context, in VideoGameInput) (*VideoGameView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.checkReleaseYear(in.ReleaseYear); err != nil {
		return nil, err
	}
	g := &dom.VideoGame{Title: in.Title, ReleaseYear: in.ReleaseYear, Price: in.Price}
	err := s.run(ctx, "videogame.create", func(ctx context.Context) error {
		r, err := s.resolveRefs(ctx, &in.DeveloperID, &in.PublisherID, &in.GenreID)
		if err != nil {
			return err
		}
		r.apply(g)
		return s.games.Create(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, entityGame, events.ActionCreated, g.ID, g.Title)
	return gameView(g), nil
}

// ListVideoGames applies the filters conjunctively: genre, developer,
// publisher, release year, price range, then title.
func (s *Service) ListVideoGames(ctx context.Context, f VideoGameFilter) ([]*VideoGameView, error) {
	var arr []*dom.VideoGame
	err := s.run(ctx, "videogame.list", func(ctx context.Context) error {
		var err error
		arr, err = s.games.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]*VideoGameView, 0, len(arr))
	for _, g := range arr {
		if f.matches(g) {
			out = append(out, gameView(g))
		}
	}
	return out, nil
}

func (f VideoGameFilter) matches(g *dom.VideoGame) bool {
	switch {
	case f.GenreID != nil && g.GenreID != *f.GenreID:
		return false
	case f.DeveloperID != nil && g.DeveloperID != *f.DeveloperID:
		return false
	case f.PublisherID != nil && g.PublisherID != *f.PublisherID:
		return false
	case f.ReleaseYear != nil && g.ReleaseYear != *f.ReleaseYear:
		return false
	case f.MinPrice != nil && g.Price < *f.MinPrice:
		return false
	case f.MaxPrice != nil && g.Price > *f.MaxPrice:
		return false
	case f.Title != "" && !strings.Contains(strings.ToLower(g.Title), strings.ToLower(f.Title)):
		return false
	}
	return true
}

func (s *Service) GetVideoGame(ctx context.Context, id uint) (*VideoGameView, error) {
	var out *VideoGameView
	err := s.run(ctx, "videogame.get", func(ctx context.Context) error {
		g, err := s.games.Get(ctx, id)
		if err != nil {
			return lookupErr(err, "VideoGame", id)
		}
		out = gameView(g)
		return nil
	})
	return out, err
}

// UpdateVideoGame replaces every field; all three references must resolve.
func (s *Service) UpdateVideoGame(ctx context.Context, id uint, in VideoGameInput) (*VideoGameView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var g *dom.VideoGame
	err := s.run(ctx, "videogame.update", func(ctx context.Context) error {
		var err error
		if g, err = s.games.Get(ctx, id); err != nil {
			return lookupErr(err, "VideoGame", id)
		}
		if err := s.checkReleaseYear(in.ReleaseYear); err != nil {
			return err
		}
		r, err := s.resolveRefs(ctx, &in.DeveloperID, &in.PublisherID, &in.GenreID)
		if err != nil {
			return err
		}
		g.Title, g.ReleaseYear, g.Price = in.Title, in.ReleaseYear, in.Price
		r.apply(g)
		return s.games.Update(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, entityGame, events.ActionUpdated, g.ID, g.Title)
	return gameView(g), nil
}

// PatchVideoGame overlays the provided fields and keeps the rest.
func (s *Service) PatchVideoGame(ctx context.Context, id uint, p VideoGamePatch) (*VideoGameView, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	var g *dom.VideoGame
	err := s.run(ctx, "videogame.patch", func(ctx context.Context) error {
		var err error
		if g, err = s.games.Get(ctx, id); err != nil {
			return lookupErr(err, "VideoGame", id)
		}
		if p.ReleaseYear != nil {
			if err := s.checkReleaseYear(*p.ReleaseYear); err != nil {
				return err
			}
		}
		r, err := s.resolveRefs(ctx, p.DeveloperID, p.PublisherID, p.GenreID)
		if err != nil {
			return err
		}
		if p.Title != nil {
			g.Title = *p.Title
		}
		if p.ReleaseYear != nil {
			g.ReleaseYear = *p.ReleaseYear
		}
		if p.Price != nil {
			g.Price = *p.Price
		}
		r.apply(g)
		return s.games.Update(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, entityGame, events.ActionUpdated, g.ID, g.Title)
	return gameView(g), nil
}

// DeleteVideoGame removes a game unconditionally.
func (s *Service) DeleteVideoGame(ctx context.Context, id uint) error {
	var title string
	err := s.run(ctx, "videogame.delete", func(ctx context.Context) error {
		g, err := s.games.Get(ctx, id)
		if err != nil {
			return lookupErr(err, "VideoGame", id)
		}
		title = g.Title
		return s.games.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.emit(ctx, entityGame, events.ActionDeleted, id, title)
	return nil
}
