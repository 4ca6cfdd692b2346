// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

// Package people contains the person record domain: the Person entity,
// the persistence API and the service with create, read, update and
// delete operations over a single collection.
package people
