package catalog

import (
	"context"

	dom "github.com/cuihairu/labcatalog/internal/ports"
)

// DeveloperRepo adapts *Repo to ports.DeveloperRepository.
type DeveloperRepo struct{ r *Repo }

func NewDeveloperRepo(r *Repo) *DeveloperRepo { return &DeveloperRepo{r: r} }

var _ dom.DeveloperRepository = (*DeveloperRepo)(nil)

func (p *DeveloperRepo) Create(ctx context.Context, d *dom.Developer) error {
	m := &Developer{Name: d.Name, Country: d.Country, FoundedYear: d.FoundedYear}
	if err := p.r.CreateDeveloper(ctx, m); err != nil {
		return err
	}
	d.ID, d.CreatedAt, d.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}
func (p *DeveloperRepo) Update(ctx context.Context, d *dom.Developer) error {
	m := &Developer{ID: d.ID, Name: d.Name, Country: d.Country, FoundedYear: d.FoundedYear, CreatedAt: d.CreatedAt}
	if err := p.r.UpdateDeveloper(ctx, m); err != nil {
		return err
	}
	d.UpdatedAt = m.UpdatedAt
	return nil
}
func (p *DeveloperRepo) Delete(ctx context.Context, id uint) error {
	return p.r.DeleteDeveloper(ctx, id)
}
func (p *DeveloperRepo) Get(ctx context.Context, id uint) (*dom.Developer, error) {
	m, err := p.r.GetDeveloper(ctx, id)
	if err != nil {
		return nil, err
	}
	return developerToDomain(m), nil
}
func (p *DeveloperRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return p.r.DeveloperExists(ctx, id)
}
func (p *DeveloperRepo) List(ctx context.Context) ([]*dom.Developer, error) {
	arr, err := p.r.ListDevelopers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dom.Developer, 0, len(arr))
	for _, m := range arr {
		out = append(out, developerToDomain(m))
	}
	return out, nil
}
func (p *DeveloperRepo) FindByName(ctx context.Context, name string) (*dom.Developer, error) {
	m, err := p.r.FindDeveloperByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return developerToDomain(m), nil
}
func (p *DeveloperRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return p.r.DeveloperNameExists(ctx, name)
}

// PublisherRepo adapts *Repo to ports.PublisherRepository.
type PublisherRepo struct{ r *Repo }

func NewPublisherRepo(r *Repo) *PublisherRepo { return &PublisherRepo{r: r} }

var _ dom.PublisherRepository = (*PublisherRepo)(nil)

func (p *PublisherRepo) Create(ctx context.Context, d *dom.Publisher) error {
	m := &Publisher{Name: d.Name, Country: d.Country, FoundedYear: d.FoundedYear}
	if err := p.r.CreatePublisher(ctx, m); err != nil {
		return err
	}
	d.ID, d.CreatedAt, d.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}
func (p *PublisherRepo) Update(ctx context.Context, d *dom.Publisher) error {
	m := &Publisher{ID: d.ID, Name: d.Name, Country: d.Country, FoundedYear: d.FoundedYear, CreatedAt: d.CreatedAt}
	if err := p.r.UpdatePublisher(ctx, m); err != nil {
		return err
	}
	d.UpdatedAt = m.UpdatedAt
	return nil
}
func (p *PublisherRepo) Delete(ctx context.Context, id uint) error {
	return p.r.DeletePublisher(ctx, id)
}
func (p *PublisherRepo) Get(ctx context.Context, id uint) (*dom.Publisher, error) {
	m, err := p.r.GetPublisher(ctx, id)
	if err != nil {
		return nil, err
	}
	return publisherToDomain(m), nil
}
func (p *PublisherRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return p.r.PublisherExists(ctx, id)
}
func (p *PublisherRepo) List(ctx context.Context) ([]*dom.Publisher, error) {
	arr, err := p.r.ListPublishers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dom.Publisher, 0, len(arr))
	for _, m := range arr {
		out = append(out, publisherToDomain(m))
	}
	return out, nil
}
func (p *PublisherRepo) FindByName(ctx context.Context, name string) (*dom.Publisher, error) {
	m, err := p.r.FindPublisherByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return publisherToDomain(m), nil
}
func (p *PublisherRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return p.r.PublisherNameExists(ctx, name)
}

// GenreRepo adapts *Repo to ports.GenreRepository.
type GenreRepo struct{ r *Repo }

func NewGenreRepo(r *Repo) *GenreRepo { return &GenreRepo{r: r} }

var _ dom.GenreRepository = (*GenreRepo)(nil)

func (p *GenreRepo) Create(ctx context.Context, g *dom.Genre) error {
	m := &Genre{Name: g.Name, Description: g.Description}
	if err := p.r.CreateGenre(ctx, m); err != nil {
		return err
	}
	g.ID, g.CreatedAt, g.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}
func (p *GenreRepo) Update(ctx context.Context, g *dom.Genre) error {
	m := &Genre{ID: g.ID, Name: g.Name, Description: g.Description, CreatedAt: g.CreatedAt}
	if err := p.r.UpdateGenre(ctx, m); err != nil {
		return err
	}
	g.UpdatedAt = m.UpdatedAt
	return nil
}
func (p *GenreRepo) Delete(ctx context.Context, id uint) error { return p.r.DeleteGenre(ctx, id) }
func (p *GenreRepo) Get(ctx context.Context, id uint) (*dom.Genre, error) {
	m, err := p.r.GetGenre(ctx, id)
	if err != nil {
		return nil, err
	}
	return genreToDomain(m), nil
}
func (p *GenreRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return p.r.GenreExists(ctx, id)
}
func (p *GenreRepo) List(ctx context.Context) ([]*dom.Genre, error) {
	arr, err := p.r.ListGenres(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dom.Genre, 0, len(arr))
	for _, m := range arr {
		out = append(out, genreToDomain(m))
	}
	return out, nil
}
func (p *GenreRepo) FindByName(ctx context.Context, name string) (*dom.Genre, error) {
	m, err := p.r.FindGenreByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return genreToDomain(m), nil
}
func (p *GenreRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return p.r.GenreNameExists(ctx, name)
}

// VideoGameRepo adapts *Repo to ports.VideoGameRepository.
type VideoGameRepo struct{ r *Repo }

func NewVideoGameRepo(r *Repo) *VideoGameRepo { return &VideoGameRepo{r: r} }

var _ dom.VideoGameRepository = (*VideoGameRepo)(nil)

func (p *VideoGameRepo) Create(ctx context.Context, g *dom.VideoGame) error {
	m := gameFromDomain(g)
	if err := p.r.CreateGame(ctx, m); err != nil {
		return err
	}
	g.ID, g.CreatedAt, g.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}
func (p *VideoGameRepo) Update(ctx context.Context, g *dom.VideoGame) error {
	m := gameFromDomain(g)
	if err := p.r.UpdateGame(ctx, m); err != nil {
		return err
	}
	g.UpdatedAt = m.UpdatedAt
	return nil
}
func (p *VideoGameRepo) Delete(ctx context.Context, id uint) error { return p.r.DeleteGame(ctx, id) }
func (p *VideoGameRepo) Get(ctx context.Context, id uint) (*dom.VideoGame, error) {
	m, err := p.r.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	return gameToDomain(m), nil
}
func (p *VideoGameRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return p.r.GameExists(ctx, id)
}
func (p *VideoGameRepo) List(ctx context.Context) ([]*dom.VideoGame, error) {
	return gamesToDomain(p.r.ListGames(ctx))
}
func (p *VideoGameRepo) ListByDeveloper(ctx context.Context, developerID uint) ([]*dom.VideoGame, error) {
	return gamesToDomain(p.r.ListGames(ctx, whereEq("developer_id", developerID)))
}
func (p *VideoGameRepo) ListByPublisher(ctx context.Context, publisherID uint) ([]*dom.VideoGame, error) {
	return gamesToDomain(p.r.ListGames(ctx, whereEq("publisher_id", publisherID)))
}
func (p *VideoGameRepo) ListByGenre(ctx context.Context, genreID uint) ([]*dom.VideoGame, error) {
	return gamesToDomain(p.r.ListGames(ctx, whereEq("genre_id", genreID)))
}
func (p *VideoGameRepo) ListByReleaseYear(ctx context.Context, year int) ([]*dom.VideoGame, error) {
	return gamesToDomain(p.r.ListGames(ctx, whereEq("release_year", year)))
}
func (p *VideoGameRepo) ListByPriceBetween(ctx context.Context, min, max dom.Price) ([]*dom.VideoGame, error) {
	return gamesToDomain(p.r.ListGames(ctx, wherePriceBetween(int64(min), int64(max))))
}
func (p *VideoGameRepo) ListByTitle(ctx context.Context, fragment string) ([]*dom.VideoGame, error) {
	return gamesToDomain(p.r.ListGames(ctx, whereTitleContains(fragment)))
}
func (p *VideoGameRepo) CountByDeveloper(ctx context.Context, developerID uint) (int64, error) {
	return p.r.CountGames(ctx, "developer_id", developerID)
}
func (p *VideoGameRepo) CountByPublisher(ctx context.Context, publisherID uint) (int64, error) {
	return p.r.CountGames(ctx, "publisher_id", publisherID)
}
func (p *VideoGameRepo) CountByGenre(ctx context.Context, genreID uint) (int64, error) {
	return p.r.CountGames(ctx, "genre_id", genreID)
}

// Helpers
func developerToDomain(m *Developer) *dom.Developer {
	if m == nil {
		return nil
	}
	return &dom.Developer{ID: m.ID, Name: m.Name, Country: m.Country, FoundedYear: m.FoundedYear, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func publisherToDomain(m *Publisher) *dom.Publisher {
	if m == nil {
		return nil
	}
	return &dom.Publisher{ID: m.ID, Name: m.Name, Country: m.Country, FoundedYear: m.FoundedYear, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func genreToDomain(m *Genre) *dom.Genre {
	if m == nil {
		return nil
	}
	return &dom.Genre{ID: m.ID, Name: m.Name, Description: m.Description, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func gameFromDomain(g *dom.VideoGame) *VideoGame {
	return &VideoGame{
		ID:          g.ID,
		Title:       g.Title,
		ReleaseYear: g.ReleaseYear,
		PriceCents:  int64(g.Price),
		DeveloperID: g.DeveloperID,
		PublisherID: g.PublisherID,
		GenreID:     g.GenreID,
		CreatedAt:   g.CreatedAt,
	}
}

func gameToDomain(m *VideoGame) *dom.VideoGame {
	if m == nil {
		return nil
	}
	return &dom.VideoGame{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		Price:       dom.Price(m.PriceCents),
		DeveloperID: m.DeveloperID,
		PublisherID: m.PublisherID,
		GenreID:     m.GenreID,
		Developer:   *developerToDomain(&m.Developer),
		Publisher:   *publisherToDomain(&m.Publisher),
		Genre:       *genreToDomain(&m.Genre),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func gamesToDomain(arr []*VideoGame, err error) ([]*dom.VideoGame, error) {
	if err != nil {
		return nil, err
	}
	out := make([]*dom.VideoGame, 0, len(arr))
	for _, m := range arr {
		out = append(out, gameToDomain(m))
	}
	return out, nil
}
