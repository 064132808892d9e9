// Copyright 2025 The cfprune Authors.
// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0
// that can be found in the LICENSE file and https://mozilla.org/MPL/2.0/.

package cloudflare

import (
	"context"
	"errors"
	"iter"
	"net/http"
	"time"

	"github.com/cfprune/cfprune.go/core"
	"github.com/cloudflare/cloudflare-go"
	"github.com/sirupsen/logrus"
)

const (
	pageSize       = 100
	requestTimeout = 30 * time.Second
	userAgent      = "cfprune/1.0"
)

// Client wraps the Cloudflare v4 API for the deletion workflow. It keeps no
// state between calls beyond the authenticated SDK handle.
type Client struct {
	api *cloudflare.API
	log *logrus.Entry
}

var _ core.Client = (*Client)(nil)

// New builds a Client from an API token. An empty token is rejected up front
// so the run aborts before any listing.
func New(token string, log *logrus.Entry) (*Client, error) {
	if token == "" {
		return nil, &core.AuthError{Err: errors.New("no API token provided")}
	}

	api, err := cloudflare.NewWithAPIToken(token,
		cloudflare.HTTPClient(&http.Client{Timeout: requestTimeout}),
		cloudflare.UserAgent(userAgent),
	)
	if err != nil {
		return nil, &core.AuthError{Err: err}
	}

	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Client{api: api, log: log.WithField("component", "cloudflare")}, nil
}

// ZoneIDByName resolves a zone name to its identifier.
func (c *Client) ZoneIDByName(zoneName string) (string, error) {
	zoneID, err := c.api.ZoneIDByName(zoneName)
	if err != nil {
		return "", translateErr("resolve zone "+zoneName, err)
	}
	return zoneID, nil
}

// ListRecords returns a lazy sequence over every DNS record in the zone,
// following result_info page numbers until the listing is exhausted. Ranging
// over the sequence again restarts from the first page.
func (c *Client) ListRecords(ctx context.Context, zoneID string) iter.Seq2[core.Record, error] {
	return func(yield func(core.Record, error) bool) {
		rc := cloudflare.ZoneIdentifier(zoneID)

		for page := 1; ; page++ {
			records, info, err := c.api.ListDNSRecords(ctx, rc, cloudflare.ListDNSRecordsParams{
				ResultInfo: cloudflare.ResultInfo{
					Page:    page,
					PerPage: pageSize,
				},
			})
			if err != nil {
				yield(core.Record{}, translateErr("list dns records", err))
				return
			}

			c.log.WithFields(logrus.Fields{
				"zone_id": zoneID,
				"page":    page,
				"records": len(records),
			}).Debug("fetched dns record page")

			for _, record := range records {
				if !yield(toRecord(zoneID, record), nil) {
					return
				}
			}

			if info == nil || page >= info.TotalPages {
				return
			}
		}
	}
}

// DeleteRecord deletes one record by ID. No internal retry: the execution
// engine owns the per-record failure policy.
func (c *Client) DeleteRecord(ctx context.Context, zoneID string, recordID string) error {
	err := c.api.DeleteDNSRecord(ctx, cloudflare.ZoneIdentifier(zoneID), recordID)
	if err != nil {
		return translateErr("delete dns record "+recordID, err)
	}
	return nil
}

func toRecord(zoneID string, record cloudflare.DNSRecord) core.Record {
	return core.Record{
		ID:      record.ID,
		ZoneID:  zoneID,
		Name:    record.Name,
		Type:    record.Type,
		Content: record.Content,
		TTL:     record.TTL,
	}
}

// translateErr maps SDK errors onto the workflow's taxonomy: rejected
// credentials become AuthError, everything else (timeouts and rate limits
// included) an APIError.
func translateErr(op string, err error) error {
	var authn *cloudflare.AuthenticationError
	var authz *cloudflare.AuthorizationError
	if errors.As(err, &authn) || errors.As(err, &authz) {
		return &core.AuthError{Err: err}
	}

	var ratelimit *cloudflare.RatelimitError
	if errors.As(err, &ratelimit) {
		return &core.APIError{Op: op, RateLimited: true, Err: err}
	}

	return &core.APIError{Op: op, Err: err}
}
