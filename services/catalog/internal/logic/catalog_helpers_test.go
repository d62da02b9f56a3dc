package logic

import (
	"errors"
	"testing"

	"github.com/cuihairu/labcatalog/internal/ports"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
)

func TestParseFilter(t *testing.T) {
	f, err := parseFilter(&types.VideoGameFilterRequest{
		GenreId:     "3",
		ReleaseYear: "2022",
		MinPrice:    "20",
		MaxPrice:    "49.99",
		Title:       "  ring ",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.GenreID == nil || *f.GenreID != 3 {
		t.Fatalf("genreId = %v", f.GenreID)
	}
	if f.DeveloperID != nil || f.PublisherID != nil {
		t.Fatalf("unset ids should stay nil")
	}
	if f.ReleaseYear == nil || *f.ReleaseYear != 2022 {
		t.Fatalf("releaseYear = %v", f.ReleaseYear)
	}
	if *f.MinPrice != 2000 || *f.MaxPrice != 4999 {
		t.Fatalf("price range = %v..%v", *f.MinPrice, *f.MaxPrice)
	}
	if f.Title != "ring" {
		t.Fatalf("title = %q", f.Title)
	}
}

func TestParseFilterNamesBadParameter(t *testing.T) {
	cases := map[string]types.VideoGameFilterRequest{
		"developerId": {DeveloperId: "-1"},
		"publisherId": {PublisherId: "abc"},
		"releaseYear": {ReleaseYear: "twenty"},
		"maxPrice":    {MaxPrice: "lots"},
	}
	for field, req := range cases {
		_, err := parseFilter(&req)
		var verr *ports.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected validation error, got %v", field, err)
		}
		if verr.Field != field {
			t.Fatalf("field = %q, want %q", verr.Field, field)
		}
	}
}
