// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package people

import (
	"context"
	"strings"

	"github.com/rosterio/roster/pkg/apiutil"
	"github.com/rosterio/roster/pkg/errors"
	repoerr "github.com/rosterio/roster/pkg/errors/repository"
	svcerr "github.com/rosterio/roster/pkg/errors/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// AppendedFood is the value ClassicUpdate appends to favorite foods.
	AppendedFood = "Hamburger"

	// LoversFood is the food BurritoLovers filters by.
	LoversFood = "Burritos"

	loversLimit = 2
)

// Service specifies an API that must be fullfiled by the people service
// implementation, and all of its decorators (e.g. logging & metrics).
//
// Operations that look a record up by a single key return a boolean
// not-found sentinel instead of an error, so callers can distinguish an
// absent record from a failed lookup.
type Service interface {
	// CreateOne inserts a single person and returns it with the assigned ID.
	CreateOne(ctx context.Context, p Person) (Person, error)

	// CreateMany inserts people in one batch. Any invalid record rejects
	// the whole batch.
	CreateMany(ctx context.Context, ps []Person) ([]Person, error)

	// FindByName returns all people with the exact given name. No match
	// yields an empty slice, not an error.
	FindByName(ctx context.Context, name string) ([]Person, error)

	// FindOneByFavoriteFood returns the first person whose favorite foods
	// contain the given food.
	FindOneByFavoriteFood(ctx context.Context, food string) (Person, bool, error)

	// FindByID returns the person with the given ID. The ID format is
	// checked before any storage call.
	FindByID(ctx context.Context, id string) (Person, bool, error)

	// ClassicUpdate fetches the person by ID, appends AppendedFood to its
	// favorite foods and persists the whole record back. A concurrent
	// writer between fetch and persist is overwritten; FindAndSetAge is
	// the atomic alternative.
	ClassicUpdate(ctx context.Context, id string) (Person, bool, error)

	// FindAndSetAge atomically sets the age of one person matched by name
	// and returns the post-update record.
	FindAndSetAge(ctx context.Context, name string, age int) (Person, bool, error)

	// RemoveByID deletes one person by ID and returns the prior snapshot.
	RemoveByID(ctx context.Context, id string) (Person, bool, error)

	// RemoveManyByName deletes all people with the given name and returns
	// the deleted count.
	RemoveManyByName(ctx context.Context, name string) (int64, error)

	// BurritoLovers returns at most two burrito lovers sorted by name
	// ascending, with the age field omitted.
	BurritoLovers(ctx context.Context) ([]Person, error)
}

type service struct {
	people Repository
}

var _ Service = (*service)(nil)

// NewService instantiates the people service implementation.
func NewService(repo Repository) Service {
	return &service{
		people: repo,
	}
}

func (svc *service) CreateOne(ctx context.Context, p Person) (Person, error) {
	if err := validate(p); err != nil {
		return Person{}, err
	}

	saved, err := svc.people.Save(ctx, p)
	if err != nil {
		return Person{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return saved, nil
}

func (svc *service) CreateMany(ctx context.Context, ps []Person) ([]Person, error) {
	if len(ps) == 0 {
		return nil, errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrEmptyList)
	}
	for _, p := range ps {
		if err := validate(p); err != nil {
			return nil, err
		}
	}

	saved, err := svc.people.SaveAll(ctx, ps)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return saved, nil
}

func (svc *service) FindByName(ctx context.Context, name string) ([]Person, error) {
	ps, err := svc.people.RetrieveByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return ps, nil
}

func (svc *service) FindOneByFavoriteFood(ctx context.Context, food string) (Person, bool, error) {
	if food == "" {
		return Person{}, false, errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingFood)
	}

	p, err := svc.people.RetrieveOneByFood(ctx, food)
	switch {
	case err == nil:
		return p, true, nil
	case errors.Contains(err, repoerr.ErrNotFound):
		return Person{}, false, nil
	default:
		return Person{}, false, errors.Wrap(svcerr.ErrViewEntity, err)
	}
}

func (svc *service) FindByID(ctx context.Context, id string) (Person, bool, error) {
	if err := validateID(id); err != nil {
		return Person{}, false, err
	}

	p, err := svc.people.RetrieveByID(ctx, id)
	switch {
	case err == nil:
		return p, true, nil
	case errors.Contains(err, repoerr.ErrNotFound):
		return Person{}, false, nil
	default:
		return Person{}, false, errors.Wrap(svcerr.ErrViewEntity, err)
	}
}

func (svc *service) ClassicUpdate(ctx context.Context, id string) (Person, bool, error) {
	if err := validateID(id); err != nil {
		return Person{}, false, err
	}

	p, err := svc.people.RetrieveByID(ctx, id)
	switch {
	case errors.Contains(err, repoerr.ErrNotFound):
		return Person{}, false, nil
	case err != nil:
		return Person{}, false, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	p.FavoriteFoods = append(p.FavoriteFoods, AppendedFood)

	updated, err := svc.people.Update(ctx, p)
	switch {
	case err == nil:
		return updated, true, nil
	case errors.Contains(err, repoerr.ErrNotFound):
		return Person{}, false, nil
	default:
		return Person{}, false, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}
}

func (svc *service) FindAndSetAge(ctx context.Context, name string, age int) (Person, bool, error) {
	if name == "" {
		return Person{}, false, errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingName)
	}
	if age < 0 {
		return Person{}, false, errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrInvalidAge)
	}

	p, err := svc.people.UpdateAgeByName(ctx, name, age)
	switch {
	case err == nil:
		return p, true, nil
	case errors.Contains(err, repoerr.ErrNotFound):
		return Person{}, false, nil
	default:
		return Person{}, false, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}
}

func (svc *service) RemoveByID(ctx context.Context, id string) (Person, bool, error) {
	if err := validateID(id); err != nil {
		return Person{}, false, err
	}

	p, err := svc.people.RemoveByID(ctx, id)
	switch {
	case err == nil:
		return p, true, nil
	case errors.Contains(err, repoerr.ErrNotFound):
		return Person{}, false, nil
	default:
		return Person{}, false, errors.Wrap(svcerr.ErrRemoveEntity, err)
	}
}

func (svc *service) RemoveManyByName(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingName)
	}

	count, err := svc.people.RemoveAllByName(ctx, name)
	if err != nil {
		return 0, errors.Wrap(svcerr.ErrRemoveEntity, err)
	}

	return count, nil
}

func (svc *service) BurritoLovers(ctx context.Context) ([]Person, error) {
	ps, err := svc.people.RetrieveTopByFood(ctx, LoversFood, loversLimit)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return ps, nil
}

func validate(p Person) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingName)
	}

	return nil
}

func validateID(id string) error {
	if id == "" {
		return errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingID)
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrInvalidIDFormat)
	}

	return nil
}
