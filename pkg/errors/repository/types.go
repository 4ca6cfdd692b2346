// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package repository holds errors returned by persistence layers.
package repository

import "github.com/rosterio/roster/pkg/errors"

var (
	// ErrMalformedEntity indicates a malformed record specification.
	ErrMalformedEntity = errors.New("malformed entity specification")

	// ErrNotFound indicates a non-existent record request.
	ErrNotFound = errors.New("entity not found")

	// ErrCreateEntity indicates error in creating record or records.
	ErrCreateEntity = errors.New("failed to create entity in the db")

	// ErrViewEntity indicates error in viewing record or records.
	ErrViewEntity = errors.New("view entity failed")

	// ErrUpdateEntity indicates error in updating record or records.
	ErrUpdateEntity = errors.New("update entity failed")

	// ErrRemoveEntity indicates error in removing record.
	ErrRemoveEntity = errors.New("failed to remove entity")
)
