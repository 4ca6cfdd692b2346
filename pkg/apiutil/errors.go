// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/rosterio/roster/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrMissingID indicates missing record ID.
	ErrMissingID = errors.New("missing record id")

	// ErrInvalidIDFormat indicates an invalid ID format.
	ErrInvalidIDFormat = errors.New("invalid id format provided")

	// ErrMissingName indicates missing record name.
	ErrMissingName = errors.New("missing record name")

	// ErrMissingFood indicates missing food value.
	ErrMissingFood = errors.New("missing food value")

	// ErrEmptyList indicates that record list is empty.
	ErrEmptyList = errors.New("empty list provided")

	// ErrInvalidAge indicates an invalid age value.
	ErrInvalidAge = errors.New("invalid age value provided")

	// ErrInvalidQueryParams indicates invalid query parameters.
	ErrInvalidQueryParams = errors.New("invalid query parameters")

	// ErrUnsupportedContentType indicates unacceptable or lack of Content-Type.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
