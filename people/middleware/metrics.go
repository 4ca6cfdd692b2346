// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/rosterio/roster/people"
)

var _ people.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	service people.Service
}

// MetricsMiddleware instruments the people service with request count and
// latency metrics.
func MetricsMiddleware(service people.Service, counter metrics.Counter, latency metrics.Histogram) people.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		service: service,
	}
}

func (mm *metricsMiddleware) CreateOne(ctx context.Context, p people.Person) (people.Person, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "create_one").Add(1)
		mm.latency.With("method", "create_one").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.CreateOne(ctx, p)
}

func (mm *metricsMiddleware) CreateMany(ctx context.Context, ps []people.Person) ([]people.Person, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "create_many").Add(1)
		mm.latency.With("method", "create_many").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.CreateMany(ctx, ps)
}

func (mm *metricsMiddleware) FindByName(ctx context.Context, name string) ([]people.Person, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "find_by_name").Add(1)
		mm.latency.With("method", "find_by_name").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.FindByName(ctx, name)
}

func (mm *metricsMiddleware) FindOneByFavoriteFood(ctx context.Context, food string) (people.Person, bool, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "find_one_by_favorite_food").Add(1)
		mm.latency.With("method", "find_one_by_favorite_food").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.FindOneByFavoriteFood(ctx, food)
}

func (mm *metricsMiddleware) FindByID(ctx context.Context, id string) (people.Person, bool, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "find_by_id").Add(1)
		mm.latency.With("method", "find_by_id").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.FindByID(ctx, id)
}

func (mm *metricsMiddleware) ClassicUpdate(ctx context.Context, id string) (people.Person, bool, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "classic_update").Add(1)
		mm.latency.With("method", "classic_update").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.ClassicUpdate(ctx, id)
}

func (mm *metricsMiddleware) FindAndSetAge(ctx context.Context, name string, age int) (people.Person, bool, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "find_and_set_age").Add(1)
		mm.latency.With("method", "find_and_set_age").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.FindAndSetAge(ctx, name, age)
}

func (mm *metricsMiddleware) RemoveByID(ctx context.Context, id string) (people.Person, bool, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "remove_by_id").Add(1)
		mm.latency.With("method", "remove_by_id").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.RemoveByID(ctx, id)
}

func (mm *metricsMiddleware) RemoveManyByName(ctx context.Context, name string) (int64, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "remove_many_by_name").Add(1)
		mm.latency.With("method", "remove_many_by_name").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.RemoveManyByName(ctx, name)
}

func (mm *metricsMiddleware) BurritoLovers(ctx context.Context) ([]people.Person, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "burrito_lovers").Add(1)
		mm.latency.With("method", "burrito_lovers").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.BurritoLovers(ctx)
}
