// Copyright 2025 The cfprune Authors.
// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0
// that can be found in the LICENSE file and https://mozilla.org/MPL/2.0/.

package core

import "fmt"

// AuthError means the credential was missing or rejected by the remote API.
// It is fatal: no listing or deletion can be trusted after it.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// APIError is a transport or remote-side failure on a single API call.
// During listing it is fatal since the plan cannot be trusted; during
// execution it marks one record failed and the run continues.
type APIError struct {
	Op          string
	RateLimited bool
	Err         error
}

func (e *APIError) Error() string {
	if e.RateLimited {
		return fmt.Sprintf("%s: rate limited by API: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// ConfigError is an invalid or unsafe combination of user-supplied options,
// rejected before any API call is made.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }
