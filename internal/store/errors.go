// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-joycribe/internal/validators"
)

// Sentinel errors returned by [RecordStore]. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrPersistence is returned when the backend cannot read or write the
	// snapshot. The mutation that triggered it was not applied.
	ErrPersistence = errors.New("persistence error")

	// ErrRecordNotFound is returned when an operation references a record id
	// that is not in the collection.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateRecordID is returned by Create when the id is already used.
	// It is a validation error.
	ErrDuplicateRecordID = fmt.Errorf("%w: record id already exists", validators.ErrValidation)

	// ErrRevisionConflict is returned by [Backend.Save] when the stored
	// snapshot no longer matches the revision the writer started from.
	ErrRevisionConflict = errors.New("snapshot revision conflict")

	// ErrCorruptSnapshot is returned when the persisted payload cannot be
	// decoded into records.
	ErrCorruptSnapshot = errors.New("persisted history is corrupt")

	// ErrCorruptSettings is returned when the settings file is not a JSON
	// object.
	ErrCorruptSettings = errors.New("persisted settings are corrupt")

	// ErrUnknownBackend is returned when the configured backend name is not
	// supported.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors wrapped by the SQL backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when the snapshot upsert fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
