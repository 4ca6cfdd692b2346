// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package mocks contains an in-memory person repository used in tests.
package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/rosterio/roster/people"
	repoerr "github.com/rosterio/roster/pkg/errors/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ people.Repository = (*personRepositoryMock)(nil)

type personRepositoryMock struct {
	mu     sync.Mutex
	order  []string
	people map[string]people.Person
}

// NewRepository creates in-memory person repository.
func NewRepository() people.Repository {
	return &personRepositoryMock{
		people: make(map[string]people.Person),
	}
}

func (prm *personRepositoryMock) Save(_ context.Context, p people.Person) (people.Person, error) {
	prm.mu.Lock()
	defer prm.mu.Unlock()

	return prm.save(p), nil
}

func (prm *personRepositoryMock) SaveAll(_ context.Context, ps []people.Person) ([]people.Person, error) {
	prm.mu.Lock()
	defer prm.mu.Unlock()

	saved := make([]people.Person, 0, len(ps))
	for _, p := range ps {
		saved = append(saved, prm.save(p))
	}

	return saved, nil
}

func (prm *personRepositoryMock) save(p people.Person) people.Person {
	p.ID = primitive.NewObjectID().Hex()
	if p.FavoriteFoods == nil {
		p.FavoriteFoods = []string{}
	}
	prm.order = append(prm.order, p.ID)
	prm.people[p.ID] = p

	return p
}

func (prm *personRepositoryMock) RetrieveByName(_ context.Context, name string) ([]people.Person, error) {
	prm.mu.Lock()
	defer prm.mu.Unlock()

	matches := []people.Person{}
	for _, id := range prm.order {
		if p := prm.people[id]; p.Name == name {
			matches = append(matches, p)
		}
	}

	return matches, nil
}

func (prm *personRepositoryMock) RetrieveOneByFood(_ context.Context, food string) (people.Person, error) {
	prm.mu.Lock()
	defer prm.mu.Unlock()

	for _, id := range prm.order {
		if p := prm.people[id]; hasFood(p, food) {
			return p, nil
		}
	}

	return people.Person{}, repoerr.ErrNotFound
}

func (prm *personRepositoryMock) RetrieveByID(_ context.Context, id string) (people.Person, error) {
	prm.mu.Lock()
	defer prm.mu.Unlock()

	p, ok := prm.people[id]
	if !ok {
		return people.Person{}, repoerr.ErrNotFound
	}

	return p, nil
}

func (prm *personRepositoryMock) Update(_ context.Context, p people.Person) (people.Person, error) {
	prm.mu.Lock()
	defer prm.mu.Unlock()

	if _, ok := prm.people[p.ID]; !ok {
		return people.Person{}, repoerr.ErrNotFound
	}
	prm.people[p.ID] = p

	return p, nil
}

func (prm *personRepositoryMock) UpdateAgeByName(_ context.Context, name string, age int) (people.Person, error) {
	prm.mu.Lock()
	defer prm.mu.Unlock()

	for _, id := range prm.order {
		if p := prm.people[id]; p.Name == name {
			p.Age = age
			prm.people[id] = p
			return p, nil
		}
	}

	return people.Person{}, repoerr.ErrNotFound
}

func (prm *personRepositoryMock) RemoveByID(_ context.Context, id string) (people.Person, error) {
	prm.mu.Lock()
	defer prm.mu.Unlock()

	p, ok := prm.people[id]
	if !ok {
		return people.Person{}, repoerr.ErrNotFound
	}
	delete(prm.people, id)
	prm.dropOrder(id)

	return p, nil
}

func (prm *personRepositoryMock) RemoveAllByName(_ context.Context, name string) (int64, error) {
	prm.mu.Lock()
	defer prm.mu.Unlock()

	var count int64
	for _, id := range append([]string{}, prm.order...) {
		if p := prm.people[id]; p.Name == name {
			delete(prm.people, id)
			prm.dropOrder(id)
			count++
		}
	}

	return count, nil
}

func (prm *personRepositoryMock) RetrieveTopByFood(_ context.Context, food string, limit int64) ([]people.Person, error) {
	prm.mu.Lock()
	defer prm.mu.Unlock()

	matches := []people.Person{}
	for _, id := range prm.order {
		if p := prm.people[id]; hasFood(p, food) {
			p.Age = 0
			matches = append(matches, p)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Name < matches[j].Name
	})
	if int64(len(matches)) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

func (prm *personRepositoryMock) dropOrder(id string) {
	for i, oid := range prm.order {
		if oid == id {
			prm.order = append(prm.order[:i], prm.order[i+1:]...)
			return
		}
	}
}

func hasFood(p people.Person, food string) bool {
	for _, f := range p.FavoriteFoods {
		if f == food {
			return true
		}
	}
	return false
}
