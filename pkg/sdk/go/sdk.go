// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package sdk provides a Go client for the roster HTTP API.
package sdk

import (
	"bytes"
	"crypto/tls"
	"io"
	"net/http"

	"github.com/rosterio/roster/pkg/errors"
)

// CTJSON represents JSON content type.
const CTJSON = "application/json"

var (
	// ErrFailedCreation indicates that entity creation failed.
	ErrFailedCreation = errors.New("failed to create entity in the db")

	// ErrFailedFetch indicates that fetching of entity data failed.
	ErrFailedFetch = errors.New("failed to fetch entity")

	// ErrFailedUpdate indicates that entity update failed.
	ErrFailedUpdate = errors.New("failed to update entity")

	// ErrFailedRemoval indicates that entity removal failed.
	ErrFailedRemoval = errors.New("failed to remove entity")
)

var _ SDK = (*roSDK)(nil)

// Person represents a person record managed by the service.
type Person struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Age           int      `json:"age,omitempty"`
	FavoriteFoods []string `json:"favorite_foods"`
}

// HealthInfo contains service health check details.
type HealthInfo struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Description string `json:"description"`
	InstanceID  string `json:"instance_id"`
}

// SDK contains roster API client.
type SDK interface {
	// CreatePerson registers a new person record.
	CreatePerson(p Person) (Person, errors.SDKError)

	// CreatePeople registers a batch of person records in a single call.
	CreatePeople(ps []Person) ([]Person, errors.SDKError)

	// People returns all records matching the given name, in insertion order.
	People(name string) ([]Person, errors.SDKError)

	// PersonByFood returns the first record listing the given favorite food.
	PersonByFood(food string) (Person, errors.SDKError)

	// Person returns the record with the given ID.
	Person(id string) (Person, errors.SDKError)

	// AddFavoriteFood appends the service's configured food to the record's
	// favorites and returns the updated record.
	AddFavoriteFood(id string) (Person, errors.SDKError)

	// SetAge updates the age of the first record matching the given name.
	SetAge(name string, age int) (Person, errors.SDKError)

	// DeletePerson removes the record with the given ID and returns it.
	DeletePerson(id string) (Person, errors.SDKError)

	// DeletePeople removes all records matching the given name and returns
	// the number of deleted records.
	DeletePeople(name string) (int64, errors.SDKError)

	// BurritoLovers returns the burrito lovers report.
	BurritoLovers() ([]Person, errors.SDKError)

	// Health returns service health check.
	Health() (HealthInfo, errors.SDKError)
}

type roSDK struct {
	peopleURL string
	client    *http.Client
}

// Config contains the options used when instantiating the SDK.
type Config struct {
	PeopleURL       string
	TLSVerification bool
}

// NewSDK returns new roster SDK instance.
func NewSDK(conf Config) SDK {
	return &roSDK{
		peopleURL: conf.PeopleURL,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			},
		},
	}
}

// processRequest creates and sends a new HTTP request, and checks for errors
// in the HTTP response.
func (sdk roSDK) processRequest(method, reqURL string, data []byte, expectedRespCodes ...int) (http.Header, []byte, errors.SDKError) {
	req, err := http.NewRequest(method, reqURL, bytes.NewReader(data))
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	req.Header.Add("Content-Type", CTJSON)

	resp, err := sdk.client.Do(req)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	sdkerr := errors.CheckError(resp, expectedRespCodes...)
	if sdkerr != nil {
		return make(http.Header), []byte{}, sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	return resp.Header, body, nil
}
