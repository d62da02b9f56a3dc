package config

import (
	"github.com/cuihairu/labcatalog/internal/events"
	"github.com/cuihairu/labcatalog/internal/telemetry"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	Database struct {
		Driver string `json:",default=sqlite"`
		DSN    string `json:",optional"`
	} `json:",optional"`

	Events events.Config    `json:",optional"`
	Otel   telemetry.Config `json:",optional"`

	Catalog struct {
		// SeedOnStart loads the embedded demo fixtures when the service starts.
		SeedOnStart bool   `json:",optional"`
		SeedFile    string `json:",optional"`
	} `json:",optional"`
}
