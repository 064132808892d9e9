// Copyright 2025 The cfprune Authors.
// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0
// that can be found in the LICENSE file and https://mozilla.org/MPL/2.0/.

package core

import "testing"

func TestNewCriteria(t *testing.T) {
	tests := []struct {
		name       string
		names      []string
		contains   string
		recordType string
		wantNames  []string
		wantType   string
		wantEmpty  bool
	}{
		{
			name:      "no input selects all",
			wantEmpty: true,
		},
		{
			name:       "type is uppercased",
			recordType: "txt",
			wantType:   "TXT",
		},
		{
			name:      "unicode names are canonicalized to punycode",
			names:     []string{"bücher.example.com"},
			wantNames: []string{"xn--bcher-kva.example.com"},
		},
		{
			name:      "ascii names pass through unchanged",
			names:     []string{"legacy-a.example.com"},
			wantNames: []string{"legacy-a.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria, err := NewCriteria(tt.names, tt.contains, tt.recordType)
			if err != nil {
				t.Fatalf("NewCriteria() error = %v", err)
			}
			if criteria.Empty() != tt.wantEmpty {
				t.Errorf("Empty() = %v, want %v", criteria.Empty(), tt.wantEmpty)
			}
			if criteria.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", criteria.Type, tt.wantType)
			}
			if len(criteria.Names) != len(tt.wantNames) {
				t.Fatalf("Names = %v, want %v", criteria.Names, tt.wantNames)
			}
			for i, want := range tt.wantNames {
				if criteria.Names[i] != want {
					t.Errorf("Names[%d] = %q, want %q", i, criteria.Names[i], want)
				}
			}
		})
	}
}

func TestPredicateType(t *testing.T) {
	records := []Record{
		{ID: "1", Name: "a.example.com", Type: "TXT"},
		{ID: "2", Name: "b.example.com", Type: "A"},
		{ID: "3", Name: "c.example.com", Type: "txt"},
		{ID: "4", Name: "d.example.com", Type: "CNAME"},
	}

	match := Criteria{Type: "TXT"}.Predicate()

	want := map[string]bool{"1": true, "3": true}
	for _, record := range records {
		if got := match(record); got != want[record.ID] {
			t.Errorf("record %s (type %s): match = %v, want %v", record.ID, record.Type, got, want[record.ID])
		}
	}
}

func TestPredicateContains(t *testing.T) {
	match := Criteria{Contains: "legacy"}.Predicate()

	if !match(Record{Name: "legacy-a.example.com"}) {
		t.Error("legacy-a.example.com should match contains=legacy")
	}
	if match(Record{Name: "prod.example.com"}) {
		t.Error("prod.example.com should not match contains=legacy")
	}
	// Substring matching is case-sensitive.
	if match(Record{Name: "Legacy-b.example.com"}) {
		t.Error("Legacy-b.example.com should not match contains=legacy")
	}
}

func TestPredicateExactNames(t *testing.T) {
	match := Criteria{Names: []string{"a.example.com", "b.example.com"}}.Predicate()

	tests := []struct {
		name string
		want bool
	}{
		{"a.example.com", true},
		{"b.example.com", true},
		{"c.example.com", false},
		// Exact matching is case-sensitive and not a substring match.
		{"A.example.com", false},
		{"sub.a.example.com", false},
	}
	for _, tt := range tests {
		if got := match(Record{Name: tt.name}); got != tt.want {
			t.Errorf("match(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPredicateAndComposition(t *testing.T) {
	criteria := Criteria{
		Names:    []string{"a.example.com", "b.example.com"},
		Contains: "a.ex",
		Type:     "TXT",
	}
	match := criteria.Predicate()

	tests := []struct {
		record Record
		want   bool
	}{
		{Record{Name: "a.example.com", Type: "TXT"}, true},
		{Record{Name: "a.example.com", Type: "A"}, false},
		{Record{Name: "b.example.com", Type: "TXT"}, false},
		{Record{Name: "c.example.com", Type: "TXT"}, false},
	}
	for _, tt := range tests {
		if got := match(tt.record); got != tt.want {
			t.Errorf("match(%s/%s) = %v, want %v", tt.record.Name, tt.record.Type, got, tt.want)
		}
	}
}

func TestEmptyCriteriaSelectsAll(t *testing.T) {
	match := Criteria{}.Predicate()

	for _, record := range []Record{
		{ID: "1", Name: "a.example.com", Type: "A"},
		{ID: "2", Name: "b.example.com", Type: "MX"},
		{ID: "3", Name: "", Type: ""},
	} {
		if !match(record) {
			t.Errorf("empty criteria should match record %q", record.ID)
		}
	}
}
