// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package mongodb contains MongoDB client setup shared by the service
// binaries.
package mongodb

import (
	"context"

	"github.com/caarlos0/env/v7"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/rosterio/roster/pkg/errors"
)

var (
	errConfig  = errors.New("failed to load mongodb configuration")
	errConnect = errors.New("failed to connect to mongodb server")
	errPing    = errors.New("failed to ping mongodb server")
)

// Config defines the options that are used when connecting to a MongoDB
// instance.
type Config struct {
	URL  string `env:"URL,notEmpty"`
	Name string `env:"NAME" envDefault:"roster"`
}

// Connect creates a connection to the MongoDB instance and verifies it
// with a ping.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, nil, errors.Wrap(errConnect, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, errors.Wrap(errPing, err)
	}

	return client, client.Database(cfg.Name), nil
}

// Setup loads configuration from the environment and connects to the
// MongoDB server.
func Setup(ctx context.Context, envPrefix string) (*mongo.Client, *mongo.Database, error) {
	cfg := Config{}
	if err := env.Parse(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, nil, errors.Wrap(errConfig, err)
	}

	return Connect(ctx, cfg)
}
