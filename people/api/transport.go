// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package api contains the HTTP transport of the people service.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rosterio/roster"
	"github.com/rosterio/roster/internal/api"
	"github.com/rosterio/roster/people"
	"github.com/rosterio/roster/pkg/apiutil"
	"github.com/rosterio/roster/pkg/errors"
	svcerr "github.com/rosterio/roster/pkg/errors/service"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// MakeHandler returns a HTTP API handler with health check and metrics.
func MakeHandler(svc people.Service, logger *slog.Logger, svcName, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux := chi.NewRouter()

	mux.Route("/people", func(r chi.Router) {
		r.Post("/", otelhttp.NewHandler(kithttp.NewServer(
			createOneEndpoint(svc),
			decodeCreateOneReq,
			api.EncodeResponse,
			opts...,
		), "create_person").ServeHTTP)

		r.Post("/bulk", otelhttp.NewHandler(kithttp.NewServer(
			createManyEndpoint(svc),
			decodeCreateManyReq,
			api.EncodeResponse,
			opts...,
		), "create_people").ServeHTTP)

		r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
			findByNameEndpoint(svc),
			decodeFindByNameReq,
			api.EncodeResponse,
			opts...,
		), "find_by_name").ServeHTTP)

		r.Get("/burrito-lovers", otelhttp.NewHandler(kithttp.NewServer(
			loversEndpoint(svc),
			decodeLoversReq,
			api.EncodeResponse,
			opts...,
		), "burrito_lovers").ServeHTTP)

		r.Get("/food/{food}", otelhttp.NewHandler(kithttp.NewServer(
			findByFoodEndpoint(svc),
			decodeFindByFoodReq,
			api.EncodeResponse,
			opts...,
		), "find_by_favorite_food").ServeHTTP)

		r.Get("/{personID}", otelhttp.NewHandler(kithttp.NewServer(
			findByIDEndpoint(svc),
			decodeIDReq,
			api.EncodeResponse,
			opts...,
		), "find_by_id").ServeHTTP)

		r.Put("/{personID}/foods", otelhttp.NewHandler(kithttp.NewServer(
			classicUpdateEndpoint(svc),
			decodeIDReq,
			api.EncodeResponse,
			opts...,
		), "classic_update").ServeHTTP)

		r.Patch("/age", otelhttp.NewHandler(kithttp.NewServer(
			setAgeEndpoint(svc),
			decodeSetAgeReq,
			api.EncodeResponse,
			opts...,
		), "find_and_set_age").ServeHTTP)

		r.Delete("/{personID}", otelhttp.NewHandler(kithttp.NewServer(
			removeByIDEndpoint(svc),
			decodeIDReq,
			api.EncodeResponse,
			opts...,
		), "remove_by_id").ServeHTTP)

		r.Delete("/", otelhttp.NewHandler(kithttp.NewServer(
			removeManyEndpoint(svc),
			decodeRemoveManyReq,
			api.EncodeResponse,
			opts...,
		), "remove_by_name").ServeHTTP)
	})

	mux.Get("/health", roster.Health(svcName, instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodeCreateOneReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	var p people.Person
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(svcerr.ErrMalformedEntity, err))
	}

	return createOneReq{person: p}, nil
}

func decodeCreateManyReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	var ps []people.Person
	if err := json.NewDecoder(r.Body).Decode(&ps); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(svcerr.ErrMalformedEntity, err))
	}

	return createManyReq{people: ps}, nil
}

func decodeFindByNameReq(_ context.Context, r *http.Request) (interface{}, error) {
	name, err := apiutil.ReadStringQuery(r, api.NameKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return findByNameReq{name: name}, nil
}

func decodeFindByFoodReq(_ context.Context, r *http.Request) (interface{}, error) {
	return findByFoodReq{food: chi.URLParam(r, "food")}, nil
}

func decodeIDReq(_ context.Context, r *http.Request) (interface{}, error) {
	return idReq{id: chi.URLParam(r, "personID")}, nil
}

func decodeSetAgeReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	var req setAgeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(svcerr.ErrMalformedEntity, err))
	}

	return req, nil
}

func decodeRemoveManyReq(_ context.Context, r *http.Request) (interface{}, error) {
	name, err := apiutil.ReadStringQuery(r, api.NameKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return removeManyReq{name: name}, nil
}

func decodeLoversReq(_ context.Context, _ *http.Request) (interface{}, error) {
	return loversReq{}, nil
}
