// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package scenario_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterio/roster/people"
	"github.com/rosterio/roster/people/mocks"
	"github.com/rosterio/roster/scenario"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRunnerRun(t *testing.T) {
	svc := people.NewService(mocks.NewRepository())
	runner := scenario.NewRunner(svc, discardLogger(), "test-run")

	err := runner.Run(context.Background())
	assert.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
}

func TestRunnerEffects(t *testing.T) {
	repo := mocks.NewRepository()
	svc := people.NewService(repo)
	runner := scenario.NewRunner(svc, discardLogger(), "test-run")

	err := runner.Run(context.Background())
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))

	// The seed record is removed by the remove-by-id step.
	janes, err := svc.FindByName(context.Background(), "Jane Doe")
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Empty(t, janes, "seed record should have been removed")

	// Both Mary Poppins records are removed by the bulk delete step.
	marys, err := svc.FindByName(context.Background(), "Mary Poppins")
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Empty(t, marys, "bulk delete should remove all matching records")

	// Mike Ross is 26 after the targeted age update.
	mikes, err := svc.FindByName(context.Background(), "Mike Ross")
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	require.Len(t, mikes, 1)
	assert.Equal(t, 26, mikes[0].Age)
}

func TestStepsOrder(t *testing.T) {
	svc := people.NewService(mocks.NewRepository())
	steps := scenario.Steps(svc)

	expected := []string{
		"create-one",
		"create-many",
		"find-by-name",
		"find-one-by-favorite-food",
		"find-by-id",
		"classic-update",
		"find-and-set-age",
		"remove-by-id",
		"remove-many-by-name",
		"burrito-lovers",
	}
	require.Len(t, steps, len(expected))
	for i, step := range steps {
		assert.Equal(t, expected[i], step.Name, fmt.Sprintf("step %d: expected %s got %s", i, expected[i], step.Name))
	}
}

type failingRepo struct {
	people.Repository
}

func (fr failingRepo) SaveAll(context.Context, []people.Person) ([]people.Person, error) {
	return nil, errors.New("insert failed")
}

func TestRunnerAbortsOnFailure(t *testing.T) {
	svc := people.NewService(failingRepo{mocks.NewRepository()})
	runner := scenario.NewRunner(svc, discardLogger(), "test-run")

	err := runner.Run(context.Background())
	assert.NotNil(t, err, "failing step should fail the run")

	// The create-many failure must stop the run before the age update.
	janes, ferr := svc.FindByName(context.Background(), "Jane Doe")
	require.Nil(t, ferr, fmt.Sprintf("unexpected error: %s", ferr))
	require.Len(t, janes, 1)
	assert.Equal(t, 28, janes[0].Age, "steps after the failure must not run")
}
