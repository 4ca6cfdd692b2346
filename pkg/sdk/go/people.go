// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rosterio/roster/pkg/errors"
)

const (
	peopleEndpoint = "people"
	bulkEndpoint   = "bulk"
	foodsEndpoint  = "foods"
	ageEndpoint    = "age"
	foodEndpoint   = "food"
	loversEndpoint = "burrito-lovers"
)

func (sdk roSDK) CreatePerson(p Person) (Person, errors.SDKError) {
	data, err := json.Marshal(p)
	if err != nil {
		return Person{}, errors.NewSDKError(err)
	}

	reqURL := fmt.Sprintf("%s/%s", sdk.peopleURL, peopleEndpoint)
	_, body, sdkerr := sdk.processRequest(http.MethodPost, reqURL, data, http.StatusCreated)
	if sdkerr != nil {
		return Person{}, sdkerr
	}

	p = Person{}
	if err := json.Unmarshal(body, &p); err != nil {
		return Person{}, errors.NewSDKError(err)
	}

	return p, nil
}

func (sdk roSDK) CreatePeople(ps []Person) ([]Person, errors.SDKError) {
	data, err := json.Marshal(ps)
	if err != nil {
		return nil, errors.NewSDKError(err)
	}

	reqURL := fmt.Sprintf("%s/%s/%s", sdk.peopleURL, peopleEndpoint, bulkEndpoint)
	_, body, sdkerr := sdk.processRequest(http.MethodPost, reqURL, data, http.StatusCreated)
	if sdkerr != nil {
		return nil, sdkerr
	}

	var res peoplePage
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, errors.NewSDKError(err)
	}

	return res.People, nil
}

func (sdk roSDK) People(name string) ([]Person, errors.SDKError) {
	reqURL := fmt.Sprintf("%s/%s?name=%s", sdk.peopleURL, peopleEndpoint, url.QueryEscape(name))
	_, body, sdkerr := sdk.processRequest(http.MethodGet, reqURL, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	var res peoplePage
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, errors.NewSDKError(err)
	}

	return res.People, nil
}

func (sdk roSDK) PersonByFood(food string) (Person, errors.SDKError) {
	reqURL := fmt.Sprintf("%s/%s/%s/%s", sdk.peopleURL, peopleEndpoint, foodEndpoint, url.PathEscape(food))
	_, body, sdkerr := sdk.processRequest(http.MethodGet, reqURL, nil, http.StatusOK)
	if sdkerr != nil {
		return Person{}, sdkerr
	}

	var p Person
	if err := json.Unmarshal(body, &p); err != nil {
		return Person{}, errors.NewSDKError(err)
	}

	return p, nil
}

func (sdk roSDK) Person(id string) (Person, errors.SDKError) {
	reqURL := fmt.Sprintf("%s/%s/%s", sdk.peopleURL, peopleEndpoint, id)
	_, body, sdkerr := sdk.processRequest(http.MethodGet, reqURL, nil, http.StatusOK)
	if sdkerr != nil {
		return Person{}, sdkerr
	}

	var p Person
	if err := json.Unmarshal(body, &p); err != nil {
		return Person{}, errors.NewSDKError(err)
	}

	return p, nil
}

func (sdk roSDK) AddFavoriteFood(id string) (Person, errors.SDKError) {
	reqURL := fmt.Sprintf("%s/%s/%s/%s", sdk.peopleURL, peopleEndpoint, id, foodsEndpoint)
	_, body, sdkerr := sdk.processRequest(http.MethodPut, reqURL, nil, http.StatusOK)
	if sdkerr != nil {
		return Person{}, sdkerr
	}

	var p Person
	if err := json.Unmarshal(body, &p); err != nil {
		return Person{}, errors.NewSDKError(err)
	}

	return p, nil
}

func (sdk roSDK) SetAge(name string, age int) (Person, errors.SDKError) {
	data, err := json.Marshal(map[string]interface{}{"name": name, "age": age})
	if err != nil {
		return Person{}, errors.NewSDKError(err)
	}

	reqURL := fmt.Sprintf("%s/%s/%s", sdk.peopleURL, peopleEndpoint, ageEndpoint)
	_, body, sdkerr := sdk.processRequest(http.MethodPatch, reqURL, data, http.StatusOK)
	if sdkerr != nil {
		return Person{}, sdkerr
	}

	var p Person
	if err := json.Unmarshal(body, &p); err != nil {
		return Person{}, errors.NewSDKError(err)
	}

	return p, nil
}

func (sdk roSDK) DeletePerson(id string) (Person, errors.SDKError) {
	reqURL := fmt.Sprintf("%s/%s/%s", sdk.peopleURL, peopleEndpoint, id)
	_, body, sdkerr := sdk.processRequest(http.MethodDelete, reqURL, nil, http.StatusOK)
	if sdkerr != nil {
		return Person{}, sdkerr
	}

	var p Person
	if err := json.Unmarshal(body, &p); err != nil {
		return Person{}, errors.NewSDKError(err)
	}

	return p, nil
}

func (sdk roSDK) DeletePeople(name string) (int64, errors.SDKError) {
	reqURL := fmt.Sprintf("%s/%s?name=%s", sdk.peopleURL, peopleEndpoint, url.QueryEscape(name))
	_, body, sdkerr := sdk.processRequest(http.MethodDelete, reqURL, nil, http.StatusOK)
	if sdkerr != nil {
		return 0, sdkerr
	}

	var res struct {
		Deleted int64 `json:"deleted"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return 0, errors.NewSDKError(err)
	}

	return res.Deleted, nil
}

func (sdk roSDK) BurritoLovers() ([]Person, errors.SDKError) {
	reqURL := fmt.Sprintf("%s/%s/%s", sdk.peopleURL, peopleEndpoint, loversEndpoint)
	_, body, sdkerr := sdk.processRequest(http.MethodGet, reqURL, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	var res loversPage
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, errors.NewSDKError(err)
	}

	return res.Lovers, nil
}

type peoplePage struct {
	People []Person `json:"people"`
}

type loversPage struct {
	Lovers []Person `json:"lovers"`
}
