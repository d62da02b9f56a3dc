package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"

	dom "github.com/cuihairu/labcatalog/internal/ports"
)

const (
	maxNameLen       = 255
	maxGenreNameLen  = 100
	maxCountryLen    = 100
	maxTitleLen      = 255
	minFoundedYear   = 1950
	releaseYearSlack = 2
)

// CompanyInput is the create/update body for developers and publishers.
type CompanyInput struct {
	Name        string
	Country     *string
	FoundedYear *int
}

type GenreInput struct {
	Name        string
	Description *string
}

// VideoGameInput is used by create and full update; every field is required.
type VideoGameInput struct {
	Title       string
	ReleaseYear int
	Price       dom.Price
	DeveloperID uint
	PublisherID uint
	GenreID     uint
}

// VideoGamePatch overlays only the non-nil fields.
type VideoGamePatch struct {
	Title       *string
	ReleaseYear *int
	Price       *dom.Price
	DeveloperID *uint
	PublisherID *uint
	GenreID     *uint
}

// VideoGameFilter narrows ListVideoGames; nil fields do not filter.
type VideoGameFilter struct {
	GenreID     *uint
	DeveloperID *uint
	PublisherID *uint
	ReleaseYear *int
	MinPrice    *dom.Price
	MaxPrice    *dom.Price
	Title       string
}

func checkText(field, label, v string, max int) error {
	if strings.TrimSpace(v) == "" {
		return dom.Invalid(field, "%s cannot be blank", label)
	}
	if utf8.RuneCountInString(v) > max {
		return dom.Invalid(field, "%s cannot exceed %d characters", label, max)
	}
	return nil
}

func (in CompanyInput) validate() error {
	if err := checkText("name", "Name", in.Name, maxNameLen); err != nil {
		return err
	}
	if in.Country != nil && utf8.RuneCountInString(*in.Country) > maxCountryLen {
		return dom.Invalid("country", "Country cannot exceed %d characters", maxCountryLen)
	}
	if in.FoundedYear != nil && *in.FoundedYear < minFoundedYear {
		return dom.Invalid("foundedYear", "Founded year must be at least %d", minFoundedYear)
	}
	return nil
}

func (in GenreInput) validate() error {
	return checkText("name", "Name", in.Name, maxGenreNameLen)
}

func (in VideoGameInput) validate() error {
	if err := checkText("title", "Title", in.Title, maxTitleLen); err != nil {
		return err
	}
	if err := checkPrice(in.Price); err != nil {
		return err
	}
	switch {
	case in.DeveloperID == 0:
		return dom.Invalid("developerId", "Developer ID is required")
	case in.PublisherID == 0:
		return dom.Invalid("publisherId", "Publisher ID is required")
	case in.GenreID == 0:
		return dom.Invalid("genreId", "Genre ID is required")
	}
	return nil
}

func (p VideoGamePatch) validate() error {
	if p.Title != nil {
		if err := checkText("title", "Title", *p.Title, maxTitleLen); err != nil {
			return err
		}
	}
	if p.Price != nil {
		return checkPrice(*p.Price)
	}
	return nil
}

func checkPrice(p dom.Price) error {
	if p < 0 {
		return dom.Invalid("price", "Price must be non-negative")
	}
	if p > dom.MaxPrice {
		return dom.Invalid("price", "Price cannot exceed %s", dom.MaxPrice)
	}
	return nil
}

// checkReleaseYear allows at most two years past the current year.
func (s *Service) checkReleaseYear(year int) error {
	current := s.now().Year()
	if year > current+releaseYearSlack {
		return dom.Invalid("releaseYear", "Release year cannot be more than %d years in the future (current year: %d)", releaseYearSlack, current)
	}
	return nil
}

// NormalizeGenreName upper-cases the first character and keeps the rest.
func NormalizeGenreName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
