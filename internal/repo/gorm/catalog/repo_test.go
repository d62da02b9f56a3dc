package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/cuihairu/labcatalog/internal/db"
	dom "github.com/cuihairu/labcatalog/internal/ports"
	"gorm.io/gorm"
)

// newTestDB returns a migrated sqlite in-memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open("memory", "")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

type fixture struct {
	devs   *DeveloperRepo
	pubs   *PublisherRepo
	genres *GenreRepo
	games  *VideoGameRepo
	uow    *UnitOfWork
}

func newFixture(t *testing.T) fixture {
	gdb := newTestDB(t)
	r := NewRepo(gdb)
	return fixture{
		devs:   NewDeveloperRepo(r),
		pubs:   NewPublisherRepo(r),
		genres: NewGenreRepo(r),
		games:  NewVideoGameRepo(r),
		uow:    NewUnitOfWork(gdb),
	}
}

func (f fixture) seed(t *testing.T) (*dom.Developer, *dom.Publisher, *dom.Genre) {
	t.Helper()
	ctx := context.Background()
	d := &dom.Developer{Name: "CD Projekt Red"}
	if err := f.devs.Create(ctx, d); err != nil {
		t.Fatal(err)
	}
	p := &dom.Publisher{Name: "CD Projekt"}
	if err := f.pubs.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	g := &dom.Genre{Name: "RPG"}
	if err := f.genres.Create(ctx, g); err != nil {
		t.Fatal(err)
	}
	return d, p, g
}

func TestDeveloperCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	country := "Poland"
	d := &dom.Developer{Name: "CD Projekt Red", Country: &country}
	if err := f.devs.Create(ctx, d); err != nil {
		t.Fatal(err)
	}
	if d.ID == 0 || d.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamps assigned, got %+v", d)
	}
	ok, err := f.devs.ExistsByName(ctx, "CD Projekt Red")
	if err != nil || !ok {
		t.Fatalf("exists by name: ok=%v err=%v", ok, err)
	}
	got, err := f.devs.FindByName(ctx, "CD Projekt Red")
	if err != nil {
		t.Fatal(err)
	}
	if got.Country == nil || *got.Country != "Poland" {
		t.Fatalf("unexpected country %v", got.Country)
	}

	created := got.CreatedAt
	got.Name = "CDPR"
	if err := f.devs.Update(ctx, got); err != nil {
		t.Fatal(err)
	}
	again, err := f.devs.Get(ctx, d.ID)
	if err != nil {
		t.Fatal(err)
	}
	if again.Name != "CDPR" {
		t.Fatalf("update not applied: %s", again.Name)
	}
	if !again.CreatedAt.Equal(created) {
		t.Fatalf("createdAt changed on update: %v -> %v", created, again.CreatedAt)
	}
	if again.UpdatedAt.Before(again.CreatedAt) {
		t.Fatalf("updatedAt before createdAt")
	}

	if err := f.devs.Delete(ctx, d.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.devs.Get(ctx, d.ID); !errors.Is(err, dom.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestGameLookups(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d, p, g := f.seed(t)
	other := &dom.Genre{Name: "Action"}
	if err := f.genres.Create(ctx, other); err != nil {
		t.Fatal(err)
	}
	games := []*dom.VideoGame{
		{Title: "The Witcher 3", ReleaseYear: 2015, Price: 3999, DeveloperID: d.ID, PublisherID: p.ID, GenreID: g.ID},
		{Title: "Cyberpunk 2077", ReleaseYear: 2020, Price: 5999, DeveloperID: d.ID, PublisherID: p.ID, GenreID: other.ID},
		{Title: "Gwent", ReleaseYear: 2018, Price: 0, DeveloperID: d.ID, PublisherID: p.ID, GenreID: g.ID},
	}
	for _, vg := range games {
		if err := f.games.Create(ctx, vg); err != nil {
			t.Fatal(err)
		}
	}

	got, err := f.games.Get(ctx, games[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Developer.Name != "CD Projekt Red" || got.Publisher.Name != "CD Projekt" || got.Genre.Name != "RPG" {
		t.Fatalf("references not resolved: %+v", got)
	}

	byGenre, err := f.games.ListByGenre(ctx, g.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byGenre) != 2 {
		t.Fatalf("want 2 RPG games, got %d", len(byGenre))
	}
	byYear, err := f.games.ListByReleaseYear(ctx, 2020)
	if err != nil || len(byYear) != 1 || byYear[0].Title != "Cyberpunk 2077" {
		t.Fatalf("by year: %v %v", byYear, err)
	}
	byPrice, err := f.games.ListByPriceBetween(ctx, 2000, 5000)
	if err != nil || len(byPrice) != 1 || byPrice[0].Title != "The Witcher 3" {
		t.Fatalf("by price: %v %v", byPrice, err)
	}
	byTitle, err := f.games.ListByTitle(ctx, "WITCHER")
	if err != nil || len(byTitle) != 1 {
		t.Fatalf("by title: %v %v", byTitle, err)
	}
	n, err := f.games.CountByDeveloper(ctx, d.ID)
	if err != nil || n != 3 {
		t.Fatalf("count by developer: %d %v", n, err)
	}
	n, err = f.games.CountByGenre(ctx, other.ID)
	if err != nil || n != 1 {
		t.Fatalf("count by genre: %d %v", n, err)
	}
}

func TestUnitOfWorkRollback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	boom := errors.New("boom")
	err := f.uow.Do(ctx, func(ctx context.Context) error {
		if err := f.genres.Create(ctx, &dom.Genre{Name: "Puzzle"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	ok, err := f.genres.ExistsByName(ctx, "Puzzle")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("genre persisted despite rollback")
	}

	err = f.uow.Do(ctx, func(ctx context.Context) error {
		return f.uow.Do(ctx, func(ctx context.Context) error {
			return f.genres.Create(ctx, &dom.Genre{Name: "Puzzle"})
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := f.genres.ExistsByName(ctx, "Puzzle"); !ok {
		t.Fatalf("nested unit of work did not commit")
	}
}
