// Package seed loads catalog fixtures from YAML and applies them through the
// catalog service so every rule (normalization, uniqueness, references) holds.
package seed

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	dom "github.com/cuihairu/labcatalog/internal/ports"
	"github.com/cuihairu/labcatalog/internal/service/catalog"
	yaml "gopkg.in/yaml.v3"
)

//go:embed fixtures/demo.yaml
var fixturesFS embed.FS

type Company struct {
	Name        string  `yaml:"name"`
	Country     *string `yaml:"country"`
	FoundedYear *int    `yaml:"foundedYear"`
}

type Genre struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
}

// Game references its developer, publisher and genre by name.
type Game struct {
	Title       string `yaml:"title"`
	ReleaseYear int    `yaml:"releaseYear"`
	Price       string `yaml:"price"`
	Developer   string `yaml:"developer"`
	Publisher   string `yaml:"publisher"`
	Genre       string `yaml:"genre"`
}

type Fixtures struct {
	Developers []Company `yaml:"developers"`
	Publishers []Company `yaml:"publishers"`
	Genres     []Genre   `yaml:"genres"`
	Games      []Game    `yaml:"videogames"`
}

// Result counts created and already present records.
type Result struct {
	Created int
	Skipped int
}

func Parse(r io.Reader) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

func ParseFile(path string) (*Fixtures, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Parse(fh)
}

// Demo returns the bundled demo fixtures.
func Demo() *Fixtures {
	fh, err := fixturesFS.Open("fixtures/demo.yaml")
	if err != nil {
		panic(err)
	}
	defer fh.Close()
	f, err := Parse(fh)
	if err != nil {
		panic(err)
	}
	return f
}

// Apply creates the fixtures in order. Records whose name (or title) already
// exists are skipped, so Apply can run against a populated database.
func Apply(ctx context.Context, svc *catalog.Service, f *Fixtures) (Result, error) {
	var res Result
	devs, err := companyIDs(svc.ListDevelopers(ctx))
	if err != nil {
		return res, err
	}
	pubs, err := companyIDs(svc.ListPublishers(ctx))
	if err != nil {
		return res, err
	}
	genres := map[string]uint{}
	gl, err := svc.ListGenres(ctx)
	if err != nil {
		return res, err
	}
	for _, g := range gl {
		genres[g.Name] = g.ID
	}
	titles := map[string]bool{}
	games, err := svc.ListVideoGames(ctx, catalog.VideoGameFilter{})
	if err != nil {
		return res, err
	}
	for _, g := range games {
		titles[g.Title] = true
	}

	for _, d := range f.Developers {
		if _, ok := devs[d.Name]; ok {
			res.Skipped++
			continue
		}
		v, err := svc.CreateDeveloper(ctx, catalog.CompanyInput(d))
		if err != nil {
			return res, fmt.Errorf("developer %q: %w", d.Name, err)
		}
		devs[v.Name] = v.ID
		res.Created++
	}
	for _, p := range f.Publishers {
		if _, ok := pubs[p.Name]; ok {
			res.Skipped++
			continue
		}
		v, err := svc.CreatePublisher(ctx, catalog.CompanyInput(p))
		if err != nil {
			return res, fmt.Errorf("publisher %q: %w", p.Name, err)
		}
		pubs[v.Name] = v.ID
		res.Created++
	}
	for _, g := range f.Genres {
		if _, ok := genres[catalog.NormalizeGenreName(g.Name)]; ok {
			res.Skipped++
			continue
		}
		v, err := svc.CreateGenre(ctx, catalog.GenreInput(g))
		if err != nil {
			return res, fmt.Errorf("genre %q: %w", g.Name, err)
		}
		genres[v.Name] = v.ID
		res.Created++
	}
	for _, g := range f.Games {
		if titles[g.Title] {
			res.Skipped++
			continue
		}
		in, err := g.input(devs, pubs, genres)
		if err != nil {
			return res, err
		}
		if _, err := svc.CreateVideoGame(ctx, in); err != nil {
			return res, fmt.Errorf("videogame %q: %w", g.Title, err)
		}
		titles[g.Title] = true
		res.Created++
	}
	return res, nil
}

func (g Game) input(devs, pubs, genres map[string]uint) (catalog.VideoGameInput, error) {
	price, err := dom.ParsePrice(g.Price)
	if err != nil {
		return catalog.VideoGameInput{}, fmt.Errorf("videogame %q: %w", g.Title, err)
	}
	in := catalog.VideoGameInput{Title: g.Title, ReleaseYear: g.ReleaseYear, Price: price}
	var ok bool
	if in.DeveloperID, ok = devs[g.Developer]; !ok {
		return in, fmt.Errorf("videogame %q: unknown developer %q", g.Title, g.Developer)
	}
	if in.PublisherID, ok = pubs[g.Publisher]; !ok {
		return in, fmt.Errorf("videogame %q: unknown publisher %q", g.Title, g.Publisher)
	}
	if in.GenreID, ok = genres[catalog.NormalizeGenreName(g.Genre)]; !ok {
		return in, fmt.Errorf("videogame %q: unknown genre %q", g.Title, g.Genre)
	}
	return in, nil
}

func companyIDs(views []*catalog.CompanyView, err error) (map[string]uint, error) {
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint, len(views))
	for _, v := range views {
		out[v.Name] = v.ID
	}
	return out, nil
}
