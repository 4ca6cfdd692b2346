// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package mongodb contains the MongoDB implementation of the person
// repository.
package mongodb

import (
	"context"

	"github.com/rosterio/roster/people"
	"github.com/rosterio/roster/pkg/errors"
	repoerr "github.com/rosterio/roster/pkg/errors/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const peopleCollection string = "people"

type personDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Age           int                `bson:"age"`
	FavoriteFoods []string           `bson:"favorite_foods"`
}

type personRepository struct {
	db *mongo.Database
}

var _ people.Repository = (*personRepository)(nil)

// NewRepository instantiates a MongoDB implementation of person repository.
func NewRepository(db *mongo.Database) people.Repository {
	return &personRepository{
		db: db,
	}
}

func (pr *personRepository) Save(ctx context.Context, p people.Person) (people.Person, error) {
	coll := pr.db.Collection(peopleCollection)

	doc := toDoc(p)
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return people.Person{}, errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return people.Person{}, repoerr.ErrCreateEntity
	}
	p.ID = id.Hex()

	return p, nil
}

func (pr *personRepository) SaveAll(ctx context.Context, ps []people.Person) ([]people.Person, error) {
	coll := pr.db.Collection(peopleCollection)

	docs := make([]interface{}, 0, len(ps))
	for _, p := range ps {
		docs = append(docs, toDoc(p))
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		return nil, errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	saved := make([]people.Person, len(ps))
	copy(saved, ps)
	for i, insertedID := range res.InsertedIDs {
		id, ok := insertedID.(primitive.ObjectID)
		if !ok {
			return nil, repoerr.ErrCreateEntity
		}
		saved[i].ID = id.Hex()
	}

	return saved, nil
}

func (pr *personRepository) RetrieveByName(ctx context.Context, name string) ([]people.Person, error) {
	coll := pr.db.Collection(peopleCollection)

	cur, err := coll.Find(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return nil, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return decodePeople(ctx, cur)
}

func (pr *personRepository) RetrieveOneByFood(ctx context.Context, food string) (people.Person, error) {
	coll := pr.db.Collection(peopleCollection)

	var doc personDoc
	filter := bson.D{{Key: "favorite_foods", Value: food}}
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return people.Person{}, repoerr.ErrNotFound
		}
		return people.Person{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return fromDoc(doc), nil
}

func (pr *personRepository) RetrieveByID(ctx context.Context, id string) (people.Person, error) {
	coll := pr.db.Collection(peopleCollection)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return people.Person{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	var doc personDoc
	filter := bson.D{{Key: "_id", Value: oid}}
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return people.Person{}, repoerr.ErrNotFound
		}
		return people.Person{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return fromDoc(doc), nil
}

func (pr *personRepository) Update(ctx context.Context, p people.Person) (people.Person, error) {
	coll := pr.db.Collection(peopleCollection)

	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return people.Person{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	doc := toDoc(p)
	doc.ID = oid

	filter := bson.D{{Key: "_id", Value: oid}}
	res, err := coll.ReplaceOne(ctx, filter, doc)
	if err != nil {
		return people.Person{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
	}
	if res.MatchedCount < 1 {
		return people.Person{}, repoerr.ErrNotFound
	}

	return p, nil
}

func (pr *personRepository) UpdateAgeByName(ctx context.Context, name string, age int) (people.Person, error) {
	coll := pr.db.Collection(peopleCollection)

	filter := bson.D{{Key: "name", Value: name}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "age", Value: age}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc personDoc
	if err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return people.Person{}, repoerr.ErrNotFound
		}
		return people.Person{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	return fromDoc(doc), nil
}

func (pr *personRepository) RemoveByID(ctx context.Context, id string) (people.Person, error) {
	coll := pr.db.Collection(peopleCollection)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return people.Person{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	var doc personDoc
	filter := bson.D{{Key: "_id", Value: oid}}
	if err := coll.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return people.Person{}, repoerr.ErrNotFound
		}
		return people.Person{}, errors.Wrap(repoerr.ErrRemoveEntity, err)
	}

	return fromDoc(doc), nil
}

func (pr *personRepository) RemoveAllByName(ctx context.Context, name string) (int64, error) {
	coll := pr.db.Collection(peopleCollection)

	res, err := coll.DeleteMany(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return 0, errors.Wrap(repoerr.ErrRemoveEntity, err)
	}

	return res.DeletedCount, nil
}

func (pr *personRepository) RetrieveTopByFood(ctx context.Context, food string, limit int64) ([]people.Person, error) {
	coll := pr.db.Collection(peopleCollection)

	findOptions := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(limit).
		SetProjection(bson.D{{Key: "age", Value: 0}})

	filter := bson.D{{Key: "favorite_foods", Value: food}}
	cur, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return decodePeople(ctx, cur)
}

func decodePeople(ctx context.Context, cur *mongo.Cursor) ([]people.Person, error) {
	defer cur.Close(ctx)

	results := []people.Person{}
	for cur.Next(ctx) {
		var doc personDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		results = append(results, fromDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return results, nil
}

func toDoc(p people.Person) personDoc {
	foods := p.FavoriteFoods
	if foods == nil {
		foods = []string{}
	}

	return personDoc{
		Name:          p.Name,
		Age:           p.Age,
		FavoriteFoods: foods,
	}
}

func fromDoc(doc personDoc) people.Person {
	return people.Person{
		ID:            doc.ID.Hex(),
		Name:          doc.Name,
		Age:           doc.Age,
		FavoriteFoods: doc.FavoriteFoods,
	}
}
