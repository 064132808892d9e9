// Copyright 2025 The cfprune Authors.
// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0
// that can be found in the LICENSE file and https://mozilla.org/MPL/2.0/.

package core

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// Criteria selects records for deletion. All supplied fields must match
// (AND composition); a zero Criteria matches every record. Names and
// Contains match case-sensitively, Type case-insensitively.
type Criteria struct {
	Names    []string
	Contains string
	Type     string
}

// NewCriteria builds a Criteria from raw user input. Exact names are
// canonicalized to their ASCII form so Unicode zone names compare equal to
// the punycode the API returns.
func NewCriteria(names []string, contains, recordType string) (Criteria, error) {
	canonical := make([]string, 0, len(names))
	for _, name := range names {
		ascii, err := idna.ToASCII(name)
		if err != nil {
			return Criteria{}, fmt.Errorf("invalid record name %q: %w", name, err)
		}
		canonical = append(canonical, ascii)
	}

	return Criteria{
		Names:    canonical,
		Contains: contains,
		Type:     strings.ToUpper(recordType),
	}, nil
}

// Empty reports whether the criteria select every record in the zone.
func (c Criteria) Empty() bool {
	return len(c.Names) == 0 && c.Contains == "" && c.Type == ""
}

// Predicate returns a pure matcher over the criteria. The returned function
// holds no state beyond the criteria snapshot taken here.
func (c Criteria) Predicate() func(Record) bool {
	nameSet := make(map[string]bool, len(c.Names))
	for _, name := range c.Names {
		nameSet[name] = true
	}

	return func(r Record) bool {
		if len(nameSet) > 0 && !nameSet[r.Name] {
			return false
		}
		if c.Contains != "" && !strings.Contains(r.Name, c.Contains) {
			return false
		}
		if c.Type != "" && strings.ToUpper(r.Type) != c.Type {
			return false
		}
		return true
	}
}
