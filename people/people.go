// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package people

import "context"

// Person represents a single person record. ID is assigned by the storage
// layer at creation and is immutable afterwards. FavoriteFoods keeps
// insertion order.
type Person struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	FavoriteFoods []string `json:"favorite_foods"`
}

// Repository specifies a person persistence API.
type Repository interface {
	// Save persists a single person and returns it with the assigned ID.
	Save(ctx context.Context, p Person) (Person, error)

	// SaveAll persists the given people in one batch and returns them with
	// assigned IDs. The whole batch fails together.
	SaveAll(ctx context.Context, ps []Person) ([]Person, error)

	// RetrieveByName retrieves all people with the exact given name.
	RetrieveByName(ctx context.Context, name string) ([]Person, error)

	// RetrieveOneByFood retrieves the first person, in server-defined order,
	// whose favorite foods contain the given food.
	RetrieveOneByFood(ctx context.Context, food string) (Person, error)

	// RetrieveByID retrieves the person having the provided identifier.
	RetrieveByID(ctx context.Context, id string) (Person, error)

	// Update replaces the stored record with the given one, matched by ID.
	Update(ctx context.Context, p Person) (Person, error)

	// UpdateAgeByName atomically sets the age of one person matched by name
	// and returns the post-update record.
	UpdateAgeByName(ctx context.Context, name string, age int) (Person, error)

	// RemoveByID deletes one person by ID and returns the prior snapshot.
	RemoveByID(ctx context.Context, id string) (Person, error)

	// RemoveAllByName deletes all people matching the given name and returns
	// the number of deleted records.
	RemoveAllByName(ctx context.Context, name string) (int64, error)

	// RetrieveTopByFood retrieves at most limit people whose favorite foods
	// contain the given food, sorted by name ascending, with the age field
	// projected out.
	RetrieveTopByFood(ctx context.Context, food string, limit int64) ([]Person, error)
}
