package catalog

import (
	"time"

	dom "github.com/cuihairu/labcatalog/internal/ports"
)

// CompanyView is the response view for developers and publishers.
type CompanyView struct {
	ID          uint
	Name        string
	Country     *string
	FoundedYear *int
	GamesCount  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type GenreView struct {
	ID          uint
	Name        string
	Description *string
	GamesCount  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VideoGameView embeds the resolved references. Nested views carry no games count.
type VideoGameView struct {
	ID          uint
	Title       string
	ReleaseYear int
	Price       dom.Price
	Developer   CompanyView
	Publisher   CompanyView
	Genre       GenreView
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func developerView(d *dom.Developer, games int64) *CompanyView {
	return &CompanyView{
		ID: d.ID, Name: d.Name, Country: d.Country, FoundedYear: d.FoundedYear,
		GamesCount: games, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

func publisherView(p *dom.Publisher, games int64) *CompanyView {
	return &CompanyView{
		ID: p.ID, Name: p.Name, Country: p.Country, FoundedYear: p.FoundedYear,
		GamesCount: games, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

func genreView(g *dom.Genre, games int64) *GenreView {
	return &GenreView{
		ID: g.ID, Name: g.Name, Description: g.Description,
		GamesCount: games, CreatedAt: g.CreatedAt, UpdatedAt: g.UpdatedAt,
	}
}

func gameView(g *dom.VideoGame) *VideoGameView {
	return &VideoGameView{
		ID:          g.ID,
		Title:       g.Title,
		ReleaseYear: g.ReleaseYear,
		Price:       g.Price,
		Developer:   *developerView(&g.Developer, 0),
		Publisher:   *publisherView(&g.Publisher, 0),
		Genre:       *genreView(&g.Genre, 0),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
