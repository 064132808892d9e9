// Copyright 2025 The cfprune Authors.
// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0
// that can be found in the LICENSE file and https://mozilla.org/MPL/2.0/.

package core

import (
	"context"
	"iter"
)

// Record is a single DNS entry within a zone. Identity is ID; the rest is
// carried for matching and reporting only.
type Record struct {
	ID      string `json:"id"`
	ZoneID  string `json:"zone_id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
	TTL     int    `json:"ttl"`
}

// RecordLister lists every record in a zone. The sequence is finite, fetched
// lazily page by page, and restartable: ranging over it again starts a fresh
// listing from the first page. A non-nil error ends the sequence.
type RecordLister interface {
	ListRecords(ctx context.Context, zoneID string) iter.Seq2[Record, error]
}

// RecordDeleter issues a single best-effort deletion call. Retry policy
// belongs to the caller, not the client.
type RecordDeleter interface {
	DeleteRecord(ctx context.Context, zoneID string, recordID string) error
}

// Client is the remote record registry the workflow runs against.
type Client interface {
	RecordLister
	RecordDeleter
}
