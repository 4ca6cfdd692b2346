// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package middleware contains service decorators for logging and metrics.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/rosterio/roster/people"
)

var _ people.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger  *slog.Logger
	service people.Service
}

// LoggingMiddleware adds logging facilities to the people service.
func LoggingMiddleware(service people.Service, logger *slog.Logger) people.Service {
	return &loggingMiddleware{
		logger:  logger,
		service: service,
	}
}

func (lm *loggingMiddleware) CreateOne(ctx context.Context, p people.Person) (saved people.Person, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("person",
				slog.String("id", saved.ID),
				slog.String("name", p.Name),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Create person failed", args...)
			return
		}
		lm.logger.Info("Create person completed successfully", args...)
	}(time.Now())

	return lm.service.CreateOne(ctx, p)
}

func (lm *loggingMiddleware) CreateMany(ctx context.Context, ps []people.Person) (saved []people.Person, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Int("count", len(ps)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Create people batch failed", args...)
			return
		}
		lm.logger.Info("Create people batch completed successfully", args...)
	}(time.Now())

	return lm.service.CreateMany(ctx, ps)
}

func (lm *loggingMiddleware) FindByName(ctx context.Context, name string) (ps []people.Person, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("name", name),
			slog.Int("matches", len(ps)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Find people by name failed", args...)
			return
		}
		lm.logger.Info("Find people by name completed successfully", args...)
	}(time.Now())

	return lm.service.FindByName(ctx, name)
}

func (lm *loggingMiddleware) FindOneByFavoriteFood(ctx context.Context, food string) (p people.Person, found bool, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("food", food),
			slog.Bool("found", found),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Find person by favorite food failed", args...)
			return
		}
		lm.logger.Info("Find person by favorite food completed successfully", args...)
	}(time.Now())

	return lm.service.FindOneByFavoriteFood(ctx, food)
}

func (lm *loggingMiddleware) FindByID(ctx context.Context, id string) (p people.Person, found bool, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("id", id),
			slog.Bool("found", found),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Find person by id failed", args...)
			return
		}
		lm.logger.Info("Find person by id completed successfully", args...)
	}(time.Now())

	return lm.service.FindByID(ctx, id)
}

func (lm *loggingMiddleware) ClassicUpdate(ctx context.Context, id string) (p people.Person, found bool, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("id", id),
			slog.Bool("found", found),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Classic update failed", args...)
			return
		}
		lm.logger.Info("Classic update completed successfully", args...)
	}(time.Now())

	return lm.service.ClassicUpdate(ctx, id)
}

func (lm *loggingMiddleware) FindAndSetAge(ctx context.Context, name string, age int) (p people.Person, found bool, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("name", name),
			slog.Int("age", age),
			slog.Bool("found", found),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Find and set age failed", args...)
			return
		}
		lm.logger.Info("Find and set age completed successfully", args...)
	}(time.Now())

	return lm.service.FindAndSetAge(ctx, name, age)
}

func (lm *loggingMiddleware) RemoveByID(ctx context.Context, id string) (p people.Person, found bool, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("id", id),
			slog.Bool("found", found),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Remove person by id failed", args...)
			return
		}
		lm.logger.Info("Remove person by id completed successfully", args...)
	}(time.Now())

	return lm.service.RemoveByID(ctx, id)
}

func (lm *loggingMiddleware) RemoveManyByName(ctx context.Context, name string) (count int64, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("name", name),
			slog.Int64("deleted", count),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Remove people by name failed", args...)
			return
		}
		lm.logger.Info("Remove people by name completed successfully", args...)
	}(time.Now())

	return lm.service.RemoveManyByName(ctx, name)
}

func (lm *loggingMiddleware) BurritoLovers(ctx context.Context) (ps []people.Person, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Int("matches", len(ps)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("List burrito lovers failed", args...)
			return
		}
		lm.logger.Info("List burrito lovers completed successfully", args...)
	}(time.Now())

	return lm.service.BurritoLovers(ctx)
}
