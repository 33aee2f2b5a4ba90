// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-joycribe/models"
)

// emptyCollection is the payload of a freshly initialised history.
var emptyCollection = []byte("[]")

// decodeRecords parses a persisted payload. A nil or blank payload is an
// empty collection.
func decodeRecords(payload []byte) ([]models.Record, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return []models.Record{}, nil
	}

	var records []models.Record
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if records == nil {
		records = []models.Record{}
	}

	return records, nil
}

// encodeRecords serializes the collection with a two-space indent, the same
// layout the desktop build writes to history.json.
func encodeRecords(records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}

	return payload, nil
}

func cloneRecords(records []models.Record) []models.Record {
	out := make([]models.Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
