// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package main contains the one-shot runner that executes the person
// record workflow against a MongoDB instance and exits.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v7"

	mongoclient "github.com/rosterio/roster/internal/clients/mongo"
	rlog "github.com/rosterio/roster/logger"
	"github.com/rosterio/roster/people"
	"github.com/rosterio/roster/people/middleware"
	peoplemongo "github.com/rosterio/roster/people/mongodb"
	"github.com/rosterio/roster/pkg/ulid"
	"github.com/rosterio/roster/scenario"
)

const envPrefixDB = "RO_MONGO_"

type config struct {
	LogLevel string `env:"RO_LOG_LEVEL" envDefault:"info"`
}

func main() {
	ctx := context.Background()

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load scenario configuration : %s", err)
	}

	logger, err := rlog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer rlog.ExitWithError(&exitCode)

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

	runID, err := ulid.New().ID()
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate run ID: %s", err))
		exitCode = 1
		return
	}

	svc := people.NewService(peoplemongo.NewRepository(db))
	svc = middleware.LoggingMiddleware(svc, logger)

	if err := scenario.NewRunner(svc, logger, runID).Run(ctx); err != nil {
		exitCode = 1
		return
	}
}
