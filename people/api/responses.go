// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"net/http"

	"github.com/rosterio/roster"
	"github.com/rosterio/roster/people"
)

var (
	_ roster.Response = (*personRes)(nil)
	_ roster.Response = (*peopleRes)(nil)
	_ roster.Response = (*removeManyRes)(nil)
	_ roster.Response = (*loversRes)(nil)
)

type personRes struct {
	people.Person
	created bool
}

func (res personRes) Code() int {
	if res.created {
		return http.StatusCreated
	}

	return http.StatusOK
}

func (res personRes) Headers() map[string]string {
	if res.created {
		return map[string]string{
			"Location": fmt.Sprintf("/people/%s", res.ID),
		}
	}

	return map[string]string{}
}

func (res personRes) Empty() bool {
	return false
}

type peopleRes struct {
	People  []people.Person `json:"people"`
	created bool
}

func (res peopleRes) Code() int {
	if res.created {
		return http.StatusCreated
	}

	return http.StatusOK
}

func (res peopleRes) Headers() map[string]string {
	return map[string]string{}
}

func (res peopleRes) Empty() bool {
	return false
}

type removeManyRes struct {
	Deleted int64 `json:"deleted"`
}

func (res removeManyRes) Code() int {
	return http.StatusOK
}

func (res removeManyRes) Headers() map[string]string {
	return map[string]string{}
}

func (res removeManyRes) Empty() bool {
	return false
}

// loverRes deliberately has no age field: the lovers query projects it out.
type loverRes struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	FavoriteFoods []string `json:"favorite_foods"`
}

type loversRes struct {
	Lovers []loverRes `json:"lovers"`
}

func (res loversRes) Code() int {
	return http.StatusOK
}

func (res loversRes) Headers() map[string]string {
	return map[string]string{}
}

func (res loversRes) Empty() bool {
	return false
}
