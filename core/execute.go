// Copyright 2025 The cfprune Authors.
// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0
// that can be found in the LICENSE file and https://mozilla.org/MPL/2.0/.

package core

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Status is the per-record outcome of a run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Details attached to skipped outcomes.
const (
	DetailDryRun       = "dry-run: would delete"
	DetailNotConfirmed = "not confirmed"
	DetailMissingID    = "missing record id"
)

// Outcome records what happened to a single planned record.
type Outcome struct {
	Record Record
	Status Status
	Detail string
}

// Summary aggregates the outcomes of one run. Attempted is the plan length
// regardless of mode; a dry run counts every record as skipped.
type Summary struct {
	Attempted int
	Succeeded int
	Failed    int
	Skipped   int
	Outcomes  []Outcome
}

func (s *Summary) add(record Record, status Status, detail string) {
	s.Outcomes = append(s.Outcomes, Outcome{Record: record, Status: status, Detail: detail})
	switch status {
	case StatusSuccess:
		s.Succeeded++
	case StatusFailed:
		s.Failed++
	case StatusSkipped:
		s.Skipped++
	}
}

// Confirmer answers whether the operator approved the deletion. It runs once
// per non-dry run, after the plan has been presented and before the first
// mutating call.
type Confirmer func() bool

// ConfirmAlways pre-affirms the run, for the --yes flag and for callers that
// gather confirmation elsewhere.
func ConfirmAlways() bool { return true }

// Executor drives a deletion plan against a record client.
type Executor struct {
	Client  RecordDeleter
	Confirm Confirmer
	Log     *logrus.Entry
}

// Execute consumes the plan and returns the run summary. In dry-run mode no
// mutating call is issued and every record is reported as skipped. Otherwise
// the confirmer is consulted once; a declined run skips everything. A failed
// deletion marks that record and the run moves on to the next: one bad record
// must not abort the batch.
func (e *Executor) Execute(ctx context.Context, plan Plan, dryRun bool) Summary {
	summary := Summary{Attempted: len(plan)}
	if len(plan) == 0 {
		return summary
	}

	log := e.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	if dryRun {
		for _, record := range plan {
			log.WithFields(logrus.Fields{
				"record_id": record.ID,
				"name":      record.Name,
				"type":      record.Type,
			}).Info("dry-run: would delete record")
			summary.add(record, StatusSkipped, DetailDryRun)
		}
		return summary
	}

	if e.Confirm == nil || !e.Confirm() {
		log.WithField("records", len(plan)).Info("deletion not confirmed, nothing done")
		for _, record := range plan {
			summary.add(record, StatusSkipped, DetailNotConfirmed)
		}
		return summary
	}

	for _, record := range plan {
		if record.ID == "" {
			log.WithField("name", record.Name).Warn("skipping record without id")
			summary.add(record, StatusSkipped, DetailMissingID)
			continue
		}

		if err := e.Client.DeleteRecord(ctx, record.ZoneID, record.ID); err != nil {
			log.WithFields(logrus.Fields{
				"record_id": record.ID,
				"name":      record.Name,
			}).WithError(err).Error("failed to delete record")
			summary.add(record, StatusFailed, err.Error())
			continue
		}

		log.WithFields(logrus.Fields{
			"record_id": record.ID,
			"name":      record.Name,
		}).Info("deleted record")
		summary.add(record, StatusSuccess, "")
	}

	return summary
}
