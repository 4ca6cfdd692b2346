// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the name index the repository queries rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(peopleCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	})

	return err
}
