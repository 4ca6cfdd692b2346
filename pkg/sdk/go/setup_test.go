// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"io"
	"log/slog"
	"net/http/httptest"

	"github.com/rosterio/roster/people"
	"github.com/rosterio/roster/people/api"
	"github.com/rosterio/roster/people/mocks"
	rosdk "github.com/rosterio/roster/pkg/sdk/go"
)

const instanceID = "5de9b29a-feb9-11ed-be56-0242ac120002"

func newPeopleServer() (*httptest.Server, people.Service) {
	svc := people.NewService(mocks.NewRepository())

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	mux := api.MakeHandler(svc, logger, "people", instanceID)

	return httptest.NewServer(mux), svc
}

func newSDK(serverURL string) rosdk.SDK {
	return rosdk.NewSDK(rosdk.Config{
		PeopleURL: serverURL,
	})
}
