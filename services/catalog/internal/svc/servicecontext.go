package svc

import (
	"context"
	"fmt"

	"github.com/cuihairu/labcatalog/internal/db"
	"github.com/cuihairu/labcatalog/internal/events"
	repocatalog "github.com/cuihairu/labcatalog/internal/repo/gorm/catalog"
	"github.com/cuihairu/labcatalog/internal/scratch"
	"github.com/cuihairu/labcatalog/internal/seed"
	"github.com/cuihairu/labcatalog/internal/service/catalog"
	"github.com/cuihairu/labcatalog/internal/telemetry"
	"github.com/cuihairu/labcatalog/services/catalog/internal/config"
	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

type ServiceContext struct {
	Config config.Config

	DB        *gorm.DB
	Catalog   *catalog.Service
	Scratch   *scratch.Store
	Events    events.Publisher
	Telemetry *telemetry.Provider
}

// NewServiceContext opens the database, migrates the catalog tables and wires
// the catalog service. It panics when the database cannot be prepared.
func NewServiceContext(c config.Config) *ServiceContext {
	ctx, err := newServiceContext(context.Background(), c)
	logx.Must(err)
	return ctx
}

func newServiceContext(ctx context.Context, c config.Config) (*ServiceContext, error) {
	gdb, err := db.Open(c.Database.Driver, c.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := repocatalog.AutoMigrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}

	tp, err := telemetry.NewProvider(ctx, c.Otel)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	pub := events.NewFromConfig(c.Events)
	r := repocatalog.NewRepo(gdb)
	svc := catalog.NewService(repocatalog.NewUnitOfWork(gdb), catalog.Repositories{
		Developers: repocatalog.NewDeveloperRepo(r),
		Publishers: repocatalog.NewPublisherRepo(r),
		Genres:     repocatalog.NewGenreRepo(r),
		Games:      repocatalog.NewVideoGameRepo(r),
	}, catalog.WithPublisher(pub), catalog.WithRecorder(tp.Metrics))

	sc := &ServiceContext{
		Config:    c,
		DB:        gdb,
		Catalog:   svc,
		Scratch:   scratch.NewStore(),
		Events:    pub,
		Telemetry: tp,
	}
	if c.Catalog.SeedOnStart {
		if err := sc.seed(ctx); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func (s *ServiceContext) seed(ctx context.Context) error {
	f := seed.Demo()
	if s.Config.Catalog.SeedFile != "" {
		var err error
		if f, err = seed.ParseFile(s.Config.Catalog.SeedFile); err != nil {
			return fmt.Errorf("seed fixtures: %w", err)
		}
	}
	res, err := seed.Apply(ctx, s.Catalog, f)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	logx.Infof("[catalog] seed applied: created=%d skipped=%d", res.Created, res.Skipped)
	return nil
}

// Close releases the event publisher, flushes telemetry and closes the database.
func (s *ServiceContext) Close(ctx context.Context) {
	if err := s.Events.Close(); err != nil {
		logx.Errorf("[catalog] close events: %v", err)
	}
	if err := s.Telemetry.Shutdown(ctx); err != nil {
		logx.Errorf("[catalog] telemetry shutdown: %v", err)
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
