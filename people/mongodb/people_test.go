// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package mongodb_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rosterio/roster/people"
	"github.com/rosterio/roster/people/mongodb"
	"github.com/rosterio/roster/pkg/errors"
	repoerr "github.com/rosterio/roster/pkg/errors/repository"
)

const (
	testDB     = "test"
	collection = "people"
)

func resetDB(t *testing.T) *mongo.Database {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(addr))
	require.Nil(t, err, fmt.Sprintf("Creating new MongoDB client expected to succeed: %s.\n", err))

	db := client.Database(testDB)
	err = db.Collection(collection).Drop(context.Background())
	require.Nil(t, err, fmt.Sprintf("Dropping collection expected to succeed: %s.\n", err))

	return db
}

func TestPeopleSave(t *testing.T) {
	db := resetDB(t)
	repo := mongodb.NewRepository(db)

	p := people.Person{
		Name:          "Jane Doe",
		Age:           28,
		FavoriteFoods: []string{"Pasta", "Salad"},
	}

	saved, err := repo.Save(context.Background(), p)
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.NotEmpty(t, saved.ID, "saved person must have an ID assigned")
	assert.Equal(t, p.Name, saved.Name)
	assert.Equal(t, p.FavoriteFoods, saved.FavoriteFoods)

	noFoods, err := repo.Save(context.Background(), people.Person{Name: "No Foods", Age: 40})
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	retrieved, err := repo.RetrieveByID(context.Background(), noFoods.ID)
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, []string{}, retrieved.FavoriteFoods, "missing foods must be stored as an empty list")
}

func TestPeopleSaveAll(t *testing.T) {
	db := resetDB(t)
	repo := mongodb.NewRepository(db)

	batch := []people.Person{
		{Name: "John Doe", Age: 30, FavoriteFoods: []string{"Burritos"}},
		{Name: "Mike Ross", Age: 25, FavoriteFoods: []string{"Tacos", "Burritos"}},
		{Name: "Mary Poppins", Age: 35, FavoriteFoods: []string{"Tea"}},
	}

	saved, err := repo.SaveAll(context.Background(), batch)
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	require.Len(t, saved, len(batch))

	ids := map[string]bool{}
	for i, p := range saved {
		assert.NotEmpty(t, p.ID, fmt.Sprintf("person %d must have an ID assigned", i))
		assert.Equal(t, batch[i].Name, p.Name)
		ids[p.ID] = true
	}
	assert.Len(t, ids, len(batch), "assigned IDs must be distinct")
}

func TestPeopleRetrieveByName(t *testing.T) {
	db := resetDB(t)
	repo := mongodb.NewRepository(db)

	_, err := repo.SaveAll(context.Background(), []people.Person{
		{Name: "Mary Poppins", Age: 35, FavoriteFoods: []string{"Tea"}},
		{Name: "John Doe", Age: 30, FavoriteFoods: []string{"Burritos"}},
		{Name: "Mary Poppins", Age: 36, FavoriteFoods: []string{"Scones"}},
	})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	cases := []struct {
		desc  string
		name  string
		total int
	}{
		{
			desc:  "retrieve all records matching a repeated name",
			name:  "Mary Poppins",
			total: 2,
		},
		{
			desc:  "retrieve a single match",
			name:  "John Doe",
			total: 1,
		},
		{
			desc:  "retrieve with unknown name",
			name:  "Harvey Specter",
			total: 0,
		},
	}

	for _, tc := range cases {
		matches, err := repo.RetrieveByName(context.Background(), tc.name)
		assert.Nil(t, err, fmt.Sprintf("%s: got unexpected error: %s", tc.desc, err))
		assert.Len(t, matches, tc.total, fmt.Sprintf("%s: expected %d matches got %d\n", tc.desc, tc.total, len(matches)))
	}

	marys, err := repo.RetrieveByName(context.Background(), "Mary Poppins")
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, 35, marys[0].Age, "matches must come back in insertion order")
	assert.Equal(t, 36, marys[1].Age, "matches must come back in insertion order")
}

func TestPeopleRetrieveOneByFood(t *testing.T) {
	db := resetDB(t)
	repo := mongodb.NewRepository(db)

	_, err := repo.SaveAll(context.Background(), []people.Person{
		{Name: "John Doe", Age: 30, FavoriteFoods: []string{"Burritos"}},
		{Name: "Mike Ross", Age: 25, FavoriteFoods: []string{"Tacos", "Burritos"}},
	})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	cases := []struct {
		desc string
		food string
		name string
		err  error
	}{
		{
			desc: "retrieve first record listing the food",
			food: "Burritos",
			name: "John Doe",
			err:  nil,
		},
		{
			desc: "retrieve by food listed mid-array",
			food: "Tacos",
			name: "Mike Ross",
			err:  nil,
		},
		{
			desc: "retrieve with unknown food",
			food: "Sushi",
			err:  repoerr.ErrNotFound,
		},
	}

	for _, tc := range cases {
		p, err := repo.RetrieveOneByFood(context.Background(), tc.food)
		if tc.err == nil {
			assert.Nil(t, err, fmt.Sprintf("%s: got unexpected error: %s", tc.desc, err))
			assert.Equal(t, tc.name, p.Name, fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.name, p.Name))
			continue
		}
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
	}
}

func TestPeopleRetrieveByID(t *testing.T) {
	db := resetDB(t)
	repo := mongodb.NewRepository(db)

	saved, err := repo.Save(context.Background(), people.Person{Name: "Jane Doe", Age: 28, FavoriteFoods: []string{"Pasta"}})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	cases := []struct {
		desc string
		id   string
		err  error
	}{
		{
			desc: "retrieve existing person",
			id:   saved.ID,
			err:  nil,
		},
		{
			desc: "retrieve with well-formed unknown ID",
			id:   "bbf1b24ad43d4f0c8d2ca42c",
			err:  repoerr.ErrNotFound,
		},
		{
			desc: "retrieve with malformed ID",
			id:   "not-an-object-id",
			err:  repoerr.ErrMalformedEntity,
		},
	}

	for _, tc := range cases {
		p, err := repo.RetrieveByID(context.Background(), tc.id)
		if tc.err == nil {
			assert.Nil(t, err, fmt.Sprintf("%s: got unexpected error: %s", tc.desc, err))
			assert.Equal(t, saved.Name, p.Name)
			continue
		}
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
	}
}

func TestPeopleUpdate(t *testing.T) {
	db := resetDB(t)
	repo := mongodb.NewRepository(db)

	saved, err := repo.Save(context.Background(), people.Person{Name: "Jane Doe", Age: 28, FavoriteFoods: []string{"Pasta", "Salad"}})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	saved.FavoriteFoods = append(saved.FavoriteFoods, "Hamburger")
	updated, err := repo.Update(context.Background(), saved)
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, []string{"Pasta", "Salad", "Hamburger"}, updated.FavoriteFoods)

	retrieved, err := repo.RetrieveByID(context.Background(), saved.ID)
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, []string{"Pasta", "Salad", "Hamburger"}, retrieved.FavoriteFoods)

	missing := people.Person{ID: "bbf1b24ad43d4f0c8d2ca42c", Name: "Ghost"}
	_, err = repo.Update(context.Background(), missing)
	assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %s got %s\n", repoerr.ErrNotFound, err))
}

func TestPeopleUpdateAgeByName(t *testing.T) {
	db := resetDB(t)
	repo := mongodb.NewRepository(db)

	_, err := repo.Save(context.Background(), people.Person{Name: "Mike Ross", Age: 25, FavoriteFoods: []string{"Tacos"}})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	updated, err := repo.UpdateAgeByName(context.Background(), "Mike Ross", 26)
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, 26, updated.Age, "returned record must reflect the new age")

	retrieved, err := repo.RetrieveByID(context.Background(), updated.ID)
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, 26, retrieved.Age)

	_, err = repo.UpdateAgeByName(context.Background(), "Harvey Specter", 40)
	assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %s got %s\n", repoerr.ErrNotFound, err))
}

func TestPeopleRemoveByID(t *testing.T) {
	db := resetDB(t)
	repo := mongodb.NewRepository(db)

	saved, err := repo.Save(context.Background(), people.Person{Name: "Jane Doe", Age: 28, FavoriteFoods: []string{"Pasta"}})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	removed, err := repo.RemoveByID(context.Background(), saved.ID)
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, saved.Name, removed.Name, "removed record must be returned")

	_, err = repo.RemoveByID(context.Background(), saved.ID)
	assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %s got %s\n", repoerr.ErrNotFound, err))
}

func TestPeopleRemoveAllByName(t *testing.T) {
	db := resetDB(t)
	repo := mongodb.NewRepository(db)

	_, err := repo.SaveAll(context.Background(), []people.Person{
		{Name: "Mary Poppins", Age: 35, FavoriteFoods: []string{"Tea"}},
		{Name: "Mary Poppins", Age: 36, FavoriteFoods: []string{"Scones"}},
		{Name: "John Doe", Age: 30, FavoriteFoods: []string{"Burritos"}},
	})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	count, err := repo.RemoveAllByName(context.Background(), "Mary Poppins")
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, int64(2), count)

	count, err = repo.RemoveAllByName(context.Background(), "Mary Poppins")
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, int64(0), count, "removing an absent name must report zero deletions")

	remaining, err := repo.RetrieveByName(context.Background(), "John Doe")
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Len(t, remaining, 1, "unrelated records must survive the bulk delete")
}

func TestPeopleRetrieveTopByFood(t *testing.T) {
	db := resetDB(t)
	repo := mongodb.NewRepository(db)

	_, err := repo.SaveAll(context.Background(), []people.Person{
		{Name: "Rachel Zane", Age: 27, FavoriteFoods: []string{"Burritos"}},
		{Name: "John Doe", Age: 30, FavoriteFoods: []string{"Burritos"}},
		{Name: "Mike Ross", Age: 25, FavoriteFoods: []string{"Tacos", "Burritos"}},
		{Name: "Mary Poppins", Age: 35, FavoriteFoods: []string{"Tea"}},
	})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	lovers, err := repo.RetrieveTopByFood(context.Background(), "Burritos", 2)
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	require.Len(t, lovers, 2, "result must honor the limit")

	assert.Equal(t, "John Doe", lovers[0].Name, "results must be sorted by name ascending")
	assert.Equal(t, "Mike Ross", lovers[1].Name, "results must be sorted by name ascending")
	for _, p := range lovers {
		assert.Zero(t, p.Age, "age must be projected out of the result")
		assert.NotEmpty(t, p.ID)
	}
}
