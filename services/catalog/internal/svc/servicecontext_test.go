package svc

import (
	"context"
	"testing"

	"github.com/cuihairu/labcatalog/internal/service/catalog"
	"github.com/cuihairu/labcatalog/services/catalog/internal/config"
)

func memoryConfig() config.Config {
	var c config.Config
	c.Database.Driver = "memory"
	c.Events.Type = "memory"
	return c
}

func TestServiceContextSeedsOnStart(t *testing.T) {
	c := memoryConfig()
	c.Catalog.SeedOnStart = true
	sc, err := newServiceContext(context.Background(), c)
	if err != nil {
		t.Fatalf("new service context: %v", err)
	}
	defer sc.Close(context.Background())

	devs, err := sc.Catalog.ListDevelopers(context.Background())
	if err != nil {
		t.Fatalf("list developers: %v", err)
	}
	if len(devs) == 0 {
		t.Fatalf("expected seeded developers")
	}
	games, err := sc.Catalog.ListVideoGames(context.Background(), catalog.VideoGameFilter{})
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) == 0 {
		t.Fatalf("expected seeded games")
	}
}

func TestServiceContextStartsEmpty(t *testing.T) {
	sc, err := newServiceContext(context.Background(), memoryConfig())
	if err != nil {
		t.Fatalf("new service context: %v", err)
	}
	defer sc.Close(context.Background())

	genres, err := sc.Catalog.ListGenres(context.Background())
	if err != nil {
		t.Fatalf("list genres: %v", err)
	}
	if len(genres) != 0 {
		t.Fatalf("expected no genres, got %d", len(genres))
	}
	if _, ok := sc.Scratch.Number.Get(); ok {
		t.Fatalf("scratch store should start empty")
	}
}

func TestServiceContextRejectsUnknownDriver(t *testing.T) {
	c := memoryConfig()
	c.Database.Driver = "oracle"
	if _, err := newServiceContext(context.Background(), c); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
