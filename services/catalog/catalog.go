package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/cuihairu/labcatalog/internal/telemetry"
	"github.com/cuihairu/labcatalog/services/catalog/internal/config"
	"github.com/cuihairu/labcatalog/services/catalog/internal/handler"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/catalog.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		ctx.Close(shutdownCtx)
	}()

	server.Use(telemetry.HTTPMiddleware(c.Name))
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
