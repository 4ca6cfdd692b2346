// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rosdk "github.com/rosterio/roster/pkg/sdk/go"
)

func TestSDKCreatePerson(t *testing.T) {
	ts, _ := newPeopleServer()
	defer ts.Close()
	sdk := newSDK(ts.URL)

	p, err := sdk.CreatePerson(rosdk.Person{
		Name:          "Jane Doe",
		Age:           28,
		FavoriteFoods: []string{"Pasta", "Salad"},
	})
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.NotEmpty(t, p.ID, "created person must have an ID assigned")
	assert.Equal(t, "Jane Doe", p.Name)

	_, err = sdk.CreatePerson(rosdk.Person{Age: 30})
	assert.NotNil(t, err, "person without a name must be rejected")
}

func TestSDKCreatePeople(t *testing.T) {
	ts, _ := newPeopleServer()
	defer ts.Close()
	sdk := newSDK(ts.URL)

	saved, err := sdk.CreatePeople([]rosdk.Person{
		{Name: "John Doe", Age: 30, FavoriteFoods: []string{"Burritos"}},
		{Name: "Mike Ross", Age: 25, FavoriteFoods: []string{"Tacos", "Burritos"}},
	})
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	require.Len(t, saved, 2)
	for _, p := range saved {
		assert.NotEmpty(t, p.ID)
	}

	_, err = sdk.CreatePeople([]rosdk.Person{})
	assert.NotNil(t, err, "empty batch must be rejected")
}

func TestSDKPeople(t *testing.T) {
	ts, _ := newPeopleServer()
	defer ts.Close()
	sdk := newSDK(ts.URL)

	_, err := sdk.CreatePeople([]rosdk.Person{
		{Name: "Mary Poppins", Age: 35, FavoriteFoods: []string{"Tea"}},
		{Name: "Mary Poppins", Age: 36, FavoriteFoods: []string{"Scones"}},
	})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	matches, err := sdk.People("Mary Poppins")
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Len(t, matches, 2)

	matches, err = sdk.People("Harvey Specter")
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Empty(t, matches, "unknown name must yield an empty list")
}

func TestSDKPersonByFood(t *testing.T) {
	ts, _ := newPeopleServer()
	defer ts.Close()
	sdk := newSDK(ts.URL)

	_, err := sdk.CreatePerson(rosdk.Person{Name: "John Doe", Age: 30, FavoriteFoods: []string{"Burritos"}})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	p, err := sdk.PersonByFood("Burritos")
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, "John Doe", p.Name)

	_, err = sdk.PersonByFood("Sushi")
	assert.NotNil(t, err, "unknown food must yield an error")
}

func TestSDKPersonLifecycle(t *testing.T) {
	ts, _ := newPeopleServer()
	defer ts.Close()
	sdk := newSDK(ts.URL)

	created, err := sdk.CreatePerson(rosdk.Person{Name: "Jane Doe", Age: 28, FavoriteFoods: []string{"Pasta", "Salad"}})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	fetched, err := sdk.Person(created.ID)
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, created.ID, fetched.ID)

	updated, err := sdk.AddFavoriteFood(created.ID)
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, []string{"Pasta", "Salad", "Hamburger"}, updated.FavoriteFoods)

	removed, err := sdk.DeletePerson(created.ID)
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, created.ID, removed.ID)

	_, err = sdk.Person(created.ID)
	assert.NotNil(t, err, "removed person must not be retrievable")
}

func TestSDKSetAge(t *testing.T) {
	ts, _ := newPeopleServer()
	defer ts.Close()
	sdk := newSDK(ts.URL)

	_, err := sdk.CreatePerson(rosdk.Person{Name: "Mike Ross", Age: 25, FavoriteFoods: []string{"Tacos"}})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	p, err := sdk.SetAge("Mike Ross", 26)
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, 26, p.Age)

	_, err = sdk.SetAge("Harvey Specter", 40)
	assert.NotNil(t, err, "unknown name must yield an error")
}

func TestSDKDeletePeople(t *testing.T) {
	ts, _ := newPeopleServer()
	defer ts.Close()
	sdk := newSDK(ts.URL)

	_, err := sdk.CreatePeople([]rosdk.Person{
		{Name: "Mary Poppins", Age: 35, FavoriteFoods: []string{"Tea"}},
		{Name: "Mary Poppins", Age: 36, FavoriteFoods: []string{"Scones"}},
	})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	deleted, err := sdk.DeletePeople("Mary Poppins")
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, int64(2), deleted)
}

func TestSDKBurritoLovers(t *testing.T) {
	ts, _ := newPeopleServer()
	defer ts.Close()
	sdk := newSDK(ts.URL)

	_, err := sdk.CreatePeople([]rosdk.Person{
		{Name: "Rachel Zane", Age: 27, FavoriteFoods: []string{"Burritos"}},
		{Name: "John Doe", Age: 30, FavoriteFoods: []string{"Burritos"}},
		{Name: "Mike Ross", Age: 25, FavoriteFoods: []string{"Tacos", "Burritos"}},
	})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	lovers, err := sdk.BurritoLovers()
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	require.Len(t, lovers, 2)
	assert.Equal(t, "John Doe", lovers[0].Name)
	assert.Equal(t, "Mike Ross", lovers[1].Name)
	for _, p := range lovers {
		assert.Zero(t, p.Age, "age must be omitted from the report")
	}
}

func TestSDKHealth(t *testing.T) {
	ts, _ := newPeopleServer()
	defer ts.Close()
	sdk := newSDK(ts.URL)

	h, err := sdk.Health()
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, "pass", h.Status)
	assert.Equal(t, instanceID, h.InstanceID)
}
