package ports

import (
	"context"
	"time"
)

// Developer is the domain DTO for a game studio. It mirrors the DB model but avoids GORM tags.
type Developer struct {
	ID          uint
	Name        string
	Country     *string
	FoundedYear *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Publisher has the same shape as Developer but lives in its own name namespace.
type Publisher struct {
	ID          uint
	Name        string
	Country     *string
	FoundedYear *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Genre names are stored with their first character upper-cased.
type Genre struct {
	ID          uint
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VideoGame references exactly one developer, publisher and genre.
// Repositories return the referenced records resolved.
type VideoGame struct {
	ID          uint
	Title       string
	ReleaseYear int
	Price       Price
	DeveloperID uint
	PublisherID uint
	GenreID     uint
	Developer   Developer
	Publisher   Publisher
	Genre       Genre
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeveloperRepository defines persistence for developers.
// Get returns ErrRecordNotFound when the id does not exist.
type DeveloperRepository interface {
	Create(ctx context.Context, d *Developer) error
	Update(ctx context.Context, d *Developer) error
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*Developer, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]*Developer, error)
	FindByName(ctx context.Context, name string) (*Developer, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// PublisherRepository defines persistence for publishers.
type PublisherRepository interface {
	Create(ctx context.Context, p *Publisher) error
	Update(ctx context.Context, p *Publisher) error
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*Publisher, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]*Publisher, error)
	FindByName(ctx context.Context, name string) (*Publisher, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// GenreRepository defines persistence for genres.
type GenreRepository interface {
	Create(ctx context.Context, g *Genre) error
	Update(ctx context.Context, g *Genre) error
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*Genre, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]*Genre, error)
	FindByName(ctx context.Context, name string) (*Genre, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// VideoGameRepository defines persistence for games plus the foreign-key
// lookups used to derive reverse relations on demand.
type VideoGameRepository interface {
	// CRUD
	Create(ctx context.Context, g *VideoGame) error
	Update(ctx context.Context, g *VideoGame) error
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*VideoGame, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]*VideoGame, error)

	// Lookups
	ListByDeveloper(ctx context.Context, developerID uint) ([]*VideoGame, error)
	ListByPublisher(ctx context.Context, publisherID uint) ([]*VideoGame, error)
	ListByGenre(ctx context.Context, genreID uint) ([]*VideoGame, error)
	ListByReleaseYear(ctx context.Context, year int) ([]*VideoGame, error)
	ListByPriceBetween(ctx context.Context, min, max Price) ([]*VideoGame, error)
	ListByTitle(ctx context.Context, fragment string) ([]*VideoGame, error)

	// Reference counts
	CountByDeveloper(ctx context.Context, developerID uint) (int64, error)
	CountByPublisher(ctx context.Context, publisherID uint) (int64, error)
	CountByGenre(ctx context.Context, genreID uint) (int64, error)
}

// UnitOfWork runs fn inside a single transaction. Repositories called with
// the ctx passed to fn take part in that transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
