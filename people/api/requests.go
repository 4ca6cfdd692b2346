// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/rosterio/roster/people"
	"github.com/rosterio/roster/pkg/apiutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createOneReq struct {
	person people.Person
}

func (req createOneReq) validate() error {
	if req.person.Name == "" {
		return apiutil.ErrMissingName
	}

	return nil
}

type createManyReq struct {
	people []people.Person
}

func (req createManyReq) validate() error {
	if len(req.people) == 0 {
		return apiutil.ErrEmptyList
	}
	for _, p := range req.people {
		if p.Name == "" {
			return apiutil.ErrMissingName
		}
	}

	return nil
}

type findByNameReq struct {
	name string
}

func (req findByNameReq) validate() error {
	if req.name == "" {
		return apiutil.ErrMissingName
	}

	return nil
}

type findByFoodReq struct {
	food string
}

func (req findByFoodReq) validate() error {
	if req.food == "" {
		return apiutil.ErrMissingFood
	}

	return nil
}

type idReq struct {
	id string
}

func (req idReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	if _, err := primitive.ObjectIDFromHex(req.id); err != nil {
		return apiutil.ErrInvalidIDFormat
	}

	return nil
}

type setAgeReq struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func (req setAgeReq) validate() error {
	if req.Name == "" {
		return apiutil.ErrMissingName
	}
	if req.Age < 0 {
		return apiutil.ErrInvalidAge
	}

	return nil
}

type removeManyReq struct {
	name string
}

func (req removeManyReq) validate() error {
	if req.name == "" {
		return apiutil.ErrMissingName
	}

	return nil
}

type loversReq struct{}

func (req loversReq) validate() error {
	return nil
}
