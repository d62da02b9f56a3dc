package logic

import (
	"strconv"
	"strings"
	"time"

	"github.com/cuihairu/labcatalog/internal/ports"
	"github.com/cuihairu/labcatalog/internal/service/catalog"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func companyToResponse(v *catalog.CompanyView) types.CompanyResponse {
	return types.CompanyResponse{
		Id:          v.ID,
		Name:        v.Name,
		Country:     v.Country,
		FoundedYear: v.FoundedYear,
		GamesCount:  v.GamesCount,
		CreatedAt:   formatTime(v.CreatedAt),
		UpdatedAt:   formatTime(v.UpdatedAt),
	}
}

func companiesToList(views []*catalog.CompanyView) *types.CompanyListResponse {
	out := make([]types.CompanyResponse, 0, len(views))
	for _, v := range views {
		out = append(out, companyToResponse(v))
	}
	return &types.CompanyListResponse{Items: out, Count: len(out)}
}

func genreToResponse(v *catalog.GenreView) types.GenreResponse {
	return types.GenreResponse{
		Id:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		GamesCount:  v.GamesCount,
		CreatedAt:   formatTime(v.CreatedAt),
		UpdatedAt:   formatTime(v.UpdatedAt),
	}
}

func gameToResponse(v *catalog.VideoGameView) types.VideoGameResponse {
	return types.VideoGameResponse{
		Id:          v.ID,
		Title:       v.Title,
		ReleaseYear: v.ReleaseYear,
		Price:       v.Price,
		Developer:   companyToResponse(&v.Developer),
		Publisher:   companyToResponse(&v.Publisher),
		Genre:       genreToResponse(&v.Genre),
		CreatedAt:   formatTime(v.CreatedAt),
		UpdatedAt:   formatTime(v.UpdatedAt),
	}
}

func companyInput(req *types.CompanyRequest) catalog.CompanyInput {
	return catalog.CompanyInput{Name: req.Name, Country: req.Country, FoundedYear: req.FoundedYear}
}

func gameInput(req *types.VideoGameRequest) catalog.VideoGameInput {
	return catalog.VideoGameInput{
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		Price:       req.Price,
		DeveloperID: req.DeveloperId,
		PublisherID: req.PublisherId,
		GenreID:     req.GenreId,
	}
}

// parseFilter converts the raw query parameters. A malformed value is a
// validation error naming the parameter.
func parseFilter(req *types.VideoGameFilterRequest) (catalog.VideoGameFilter, error) {
	var (
		f   catalog.VideoGameFilter
		err error
	)
	if f.GenreID, err = parseID("genreId", req.GenreId); err != nil {
		return f, err
	}
	if f.DeveloperID, err = parseID("developerId", req.DeveloperId); err != nil {
		return f, err
	}
	if f.PublisherID, err = parseID("publisherId", req.PublisherId); err != nil {
		return f, err
	}
	if s := strings.TrimSpace(req.ReleaseYear); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return f, ports.Invalid("releaseYear", "Invalid value '%s' for parameter releaseYear", req.ReleaseYear)
		}
		f.ReleaseYear = &y
	}
	if f.MinPrice, err = parsePrice("minPrice", req.MinPrice); err != nil {
		return f, err
	}
	if f.MaxPrice, err = parsePrice("maxPrice", req.MaxPrice); err != nil {
		return f, err
	}
	f.Title = strings.TrimSpace(req.Title)
	return f, nil
}

func parseID(name, raw string) (*uint, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, ports.Invalid(name, "Invalid value '%s' for parameter %s", raw, name)
	}
	id := uint(n)
	return &id, nil
}

func parsePrice(name, raw string) (*ports.Price, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	p, err := ports.ParsePrice(raw)
	if err != nil {
		return nil, ports.Invalid(name, "Invalid value '%s' for parameter %s", raw, name)
	}
	return &p, nil
}
