// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package main contains roster main function to start the roster service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"

	"github.com/caarlos0/env/v7"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	mongoclient "github.com/rosterio/roster/internal/clients/mongo"
	rlog "github.com/rosterio/roster/logger"
	"github.com/rosterio/roster/people"
	"github.com/rosterio/roster/people/api"
	"github.com/rosterio/roster/people/middleware"
	peoplemongo "github.com/rosterio/roster/people/mongodb"
	jaegerclient "github.com/rosterio/roster/pkg/jaeger"
	"github.com/rosterio/roster/pkg/prometheus"
	"github.com/rosterio/roster/pkg/server"
	httpserver "github.com/rosterio/roster/pkg/server/http"
	"github.com/rosterio/roster/pkg/uuid"
)

const (
	svcName        = "people"
	envPrefixDB    = "RO_MONGO_"
	envPrefixHTTP  = "RO_HTTP_"
	defSvcHTTPPort = "9400"
)

type config struct {
	LogLevel   string  `env:"RO_LOG_LEVEL"          envDefault:"info"`
	JaegerURL  url.URL `env:"RO_JAEGER_URL"         envDefault:"http://localhost:4318/v1/traces"`
	InstanceID string  `env:"RO_PEOPLE_INSTANCE_ID" envDefault:""`
	TraceRatio float64 `env:"RO_JAEGER_TRACE_RATIO" envDefault:"1.0"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := rlog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer rlog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	client, db, err := mongoclient.Setup(ctx, envPrefixDB)
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logger.Error(fmt.Sprintf("error disconnecting from mongodb: %s", err))
		}
	}()

	if err := peoplemongo.EnsureIndexes(ctx, db); err != nil {
		logger.Error(fmt.Sprintf("failed to create indexes: %s", err))
		exitCode = 1
		return
	}

	tp, err := jaegerclient.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to init Jaeger: %s", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("error shutting down tracer provider: %s", err))
		}
	}()

	svc := newService(db, logger)

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.Parse(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err.Error()))
		exitCode = 1
		return
	}

	hs := httpserver.NewServer(ctx, cancel, svcName, httpServerConfig, api.MakeHandler(svc, logger, svcName, cfg.InstanceID), logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newService(db *mongo.Database, logger *slog.Logger) people.Service {
	repo := peoplemongo.NewRepository(db)

	svc := people.NewService(repo)
	svc = middleware.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics(svcName, "api")
	svc = middleware.MetricsMiddleware(svc, counter, latency)

	return svc
}
