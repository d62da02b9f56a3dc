package catalog

import "time"

// Developer is the DB model for a game studio.
type Developer struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:255;not null;uniqueIndex"`
	Country     *string `gorm:"size:100"`
	FoundedYear *int
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (Developer) TableName() string { return "developers" }

// Publisher is the DB model for a game publisher.
type Publisher struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:255;not null;uniqueIndex"`
	Country     *string `gorm:"size:100"`
	FoundedYear *int
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (Publisher) TableName() string { return "publishers" }

// Genre is the DB model for a game genre.
type Genre struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null;uniqueIndex"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (Genre) TableName() string { return "genres" }

// VideoGame is the DB model for a game. Price is kept in cents.
// Referenced rows are never cascaded; the service guards deletes.
type VideoGame struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null;index"`
	ReleaseYear int    `gorm:"not null;index"`
	PriceCents  int64  `gorm:"column:price_cents;not null"`

	DeveloperID uint      `gorm:"not null;index"`
	Developer   Developer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	PublisherID uint      `gorm:"not null;index"`
	Publisher   Publisher `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	GenreID     uint      `gorm:"not null;index"`
	Genre       Genre     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (VideoGame) TableName() string { return "video_games" }
