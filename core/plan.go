// Copyright 2025 The cfprune Authors.
// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0
// that can be found in the LICENSE file and https://mozilla.org/MPL/2.0/.

package core

import "iter"

// Plan is the ordered set of records selected for deletion in one run.
// Order is fetch order; entries are unique by record ID.
type Plan []Record

// BuildPlan drains the record sequence, keeps the records the predicate
// accepts, and deduplicates by ID keeping the first occurrence. The result is
// deterministic for a fixed sequence and predicate. An error from the
// sequence aborts planning: a plan built on partial data cannot be trusted.
func BuildPlan(records iter.Seq2[Record, error], match func(Record) bool) (Plan, error) {
	var plan Plan
	seen := make(map[string]bool)

	for record, err := range records {
		if err != nil {
			return nil, err
		}
		if !match(record) {
			continue
		}
		if record.ID != "" && seen[record.ID] {
			continue
		}
		seen[record.ID] = true
		plan = append(plan, record)
	}

	return plan, nil
}
