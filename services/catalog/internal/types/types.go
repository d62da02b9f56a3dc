package types

import "github.com/cuihairu/labcatalog/internal/ports"

type IdPath struct {
	Id uint `path:"id"`
}

type IndexPath struct {
	Index int `path:"index"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Field     string `json:"field,omitempty"`
}

type CompanyRequest struct {
	Name        string  `json:"name"`
	Country     *string `json:"country,omitempty"`
	FoundedYear *int    `json:"foundedYear,omitempty"`
}

type CompanyResponse struct {
	Id          uint    `json:"id"`
	Name        string  `json:"name"`
	Country     *string `json:"country"`
	FoundedYear *int    `json:"foundedYear"`
	GamesCount  int64   `json:"gamesCount"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Count int               `json:"count"`
}

type GenreRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type GenreResponse struct {
	Id          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	GamesCount  int64   `json:"gamesCount"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type GenreListResponse struct {
	Items []GenreResponse `json:"items"`
	Count int             `json:"count"`
}

type VideoGameRequest struct {
	Title       string      `json:"title"`
	ReleaseYear int         `json:"releaseYear"`
	Price       ports.Price `json:"price"`
	DeveloperId uint        `json:"developerId"`
	PublisherId uint        `json:"publisherId"`
	GenreId     uint        `json:"genreId"`
}

type VideoGamePatchRequest struct {
	Title       *string      `json:"title,omitempty"`
	ReleaseYear *int         `json:"releaseYear,omitempty"`
	Price       *ports.Price `json:"price,omitempty"`
	DeveloperId *uint        `json:"developerId,omitempty"`
	PublisherId *uint        `json:"publisherId,omitempty"`
	GenreId     *uint        `json:"genreId,omitempty"`
}

type VideoGameFilterRequest struct {
	GenreId     string `form:"genreId,optional"`
	DeveloperId string `form:"developerId,optional"`
	PublisherId string `form:"publisherId,optional"`
	ReleaseYear string `form:"releaseYear,optional"`
	MinPrice    string `form:"minPrice,optional"`
	MaxPrice    string `form:"maxPrice,optional"`
	Title       string `form:"title,optional"`
}

type VideoGameResponse struct {
	Id          uint            `json:"id"`
	Title       string          `json:"title"`
	ReleaseYear int             `json:"releaseYear"`
	Price       ports.Price     `json:"price"`
	Developer   CompanyResponse `json:"developer"`
	Publisher   CompanyResponse `json:"publisher"`
	Genre       GenreResponse   `json:"genre"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

type VideoGameListResponse struct {
	Items []VideoGameResponse `json:"items"`
	Count int                 `json:"count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ScratchValueResponse struct {
	Value any `json:"value"`
}

type ScratchSetResponse struct {
	Message string `json:"message"`
	Value   any    `json:"value"`
}

type ScratchAddResponse struct {
	Message    string `json:"message"`
	TotalItems int    `json:"totalItems"`
}

type ScratchItemAddResponse struct {
	Message    string `json:"message"`
	Item       string `json:"item"`
	TotalItems int    `json:"totalItems"`
}

type ScratchListResponse struct {
	Items any `json:"items"`
	Count int `json:"count"`
}

type ScratchIndexResponse struct {
	Index int `json:"index"`
	Value any `json:"value"`
}

type BooleanMapResponse struct {
	BooleanMap map[string]int `json:"booleanMap"`
	Count      int            `json:"count"`
}

type ScratchValueRequest struct {
	Value any `json:"value"`
}

type ScratchIndexRequest struct {
	Index int `json:"index"`
	Value any `json:"value"`
}

type ScratchItemRequest struct {
	Item string `json:"item"`
}
