// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package scenario contains the fixed person record workflow expressed as
// an ordered list of named steps. Steps run strictly sequentially and pass
// results forward through a shared state, so each one can also be invoked
// and asserted independently by a test harness.
package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rosterio/roster/people"
	"github.com/rosterio/roster/pkg/errors"
)

var (
	// ErrRecordMissing indicates that a step expected a record which was
	// not there.
	ErrRecordMissing = errors.New("expected record not found")

	// ErrStepFailed indicates a failed scenario step.
	ErrStepFailed = errors.New("scenario step failed")
)

// State carries values from one step to the next.
type State struct {
	// PersonID is the identifier assigned to the record inserted by the
	// first step. Later read, update and delete steps target it.
	PersonID string
}

// Step is a single named stage of the workflow.
type Step struct {
	Name string
	Run  func(ctx context.Context, st *State) error
}

// Steps returns the full workflow over the given service, in execution
// order.
func Steps(svc people.Service) []Step {
	return []Step{
		{
			Name: "create-one",
			Run: func(ctx context.Context, st *State) error {
				p, err := svc.CreateOne(ctx, people.Person{
					Name:          "Jane Doe",
					Age:           28,
					FavoriteFoods: []string{"Pasta", "Salad"},
				})
				if err != nil {
					return err
				}
				st.PersonID = p.ID
				return nil
			},
		},
		{
			Name: "create-many",
			Run: func(ctx context.Context, st *State) error {
				_, err := svc.CreateMany(ctx, []people.Person{
					{Name: "John Doe", Age: 30, FavoriteFoods: []string{"Burritos"}},
					{Name: "Mike Ross", Age: 25, FavoriteFoods: []string{"Tacos", "Burritos"}},
					{Name: "Mary Poppins", Age: 35, FavoriteFoods: []string{"Tea"}},
					{Name: "Mary Poppins", Age: 36, FavoriteFoods: []string{"Scones"}},
				})
				return err
			},
		},
		{
			Name: "find-by-name",
			Run: func(ctx context.Context, st *State) error {
				_, err := svc.FindByName(ctx, "Mary Poppins")
				return err
			},
		},
		{
			Name: "find-one-by-favorite-food",
			Run: func(ctx context.Context, st *State) error {
				_, found, err := svc.FindOneByFavoriteFood(ctx, people.LoversFood)
				if err != nil {
					return err
				}
				if !found {
					return ErrRecordMissing
				}
				return nil
			},
		},
		{
			Name: "find-by-id",
			Run: func(ctx context.Context, st *State) error {
				_, found, err := svc.FindByID(ctx, st.PersonID)
				if err != nil {
					return err
				}
				if !found {
					return ErrRecordMissing
				}
				return nil
			},
		},
		{
			Name: "classic-update",
			Run: func(ctx context.Context, st *State) error {
				_, found, err := svc.ClassicUpdate(ctx, st.PersonID)
				if err != nil {
					return err
				}
				if !found {
					return ErrRecordMissing
				}
				return nil
			},
		},
		{
			Name: "find-and-set-age",
			Run: func(ctx context.Context, st *State) error {
				_, found, err := svc.FindAndSetAge(ctx, "Mike Ross", 26)
				if err != nil {
					return err
				}
				if !found {
					return ErrRecordMissing
				}
				return nil
			},
		},
		{
			Name: "remove-by-id",
			Run: func(ctx context.Context, st *State) error {
				_, found, err := svc.RemoveByID(ctx, st.PersonID)
				if err != nil {
					return err
				}
				if !found {
					return ErrRecordMissing
				}
				return nil
			},
		},
		{
			Name: "remove-many-by-name",
			Run: func(ctx context.Context, st *State) error {
				_, err := svc.RemoveManyByName(ctx, "Mary Poppins")
				return err
			},
		},
		{
			Name: "burrito-lovers",
			Run: func(ctx context.Context, st *State) error {
				_, err := svc.BurritoLovers(ctx)
				return err
			},
		},
	}
}

// Runner executes the workflow once, logging every step outcome and a
// final summary. Logging lives here, at the orchestration boundary, so
// lower layers only return errors.
type Runner struct {
	svc    people.Service
	logger *slog.Logger
	runID  string
}

// NewRunner instantiates a workflow runner. The run ID tags every log
// line of one execution.
func NewRunner(svc people.Service, logger *slog.Logger, runID string) *Runner {
	return &Runner{
		svc:    svc,
		logger: logger,
		runID:  runID,
	}
}

// Run executes all steps in order. The first failing step aborts the rest;
// its error is returned after the summary is logged.
func (r *Runner) Run(ctx context.Context) error {
	var st State
	steps := Steps(r.svc)

	completed := 0
	begin := time.Now()
	for _, step := range steps {
		stepBegin := time.Now()
		if err := step.Run(ctx, &st); err != nil {
			r.logger.Error("Scenario step failed",
				slog.String("run_id", r.runID),
				slog.String("step", step.Name),
				slog.String("duration", time.Since(stepBegin).String()),
				slog.Any("error", err),
			)
			r.summary(completed, len(steps), begin, err)
			return errors.Wrap(ErrStepFailed, fmt.Errorf("%s: %w", step.Name, err))
		}
		completed++
		r.logger.Info("Scenario step completed",
			slog.String("run_id", r.runID),
			slog.String("step", step.Name),
			slog.String("duration", time.Since(stepBegin).String()),
		)
	}

	r.summary(completed, len(steps), begin, nil)
	return nil
}

func (r *Runner) summary(completed, total int, begin time.Time, err error) {
	args := []any{
		slog.String("run_id", r.runID),
		slog.Int("completed", completed),
		slog.Int("total", total),
		slog.String("duration", time.Since(begin).String()),
	}
	if err != nil {
		args = append(args, slog.Any("error", err))
		r.logger.Warn("Scenario finished with failure", args...)
		return
	}
	r.logger.Info("Scenario finished successfully", args...)
}
