// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package honeybadger is a thin client for the Honeybadger error-tracking
// REST API (https://app.honeybadger.io/v2).
//
// The client is a pass-through: every operation maps its parameters onto one
// HTTP request, authenticates with HTTP Basic (the API token as username and
// an empty password), and returns the raw JSON payload from the remote
// service. No response schema is enforced; the remote API owns the schema.
//
// All expected failure modes (missing credentials, local argument
// validation, transport faults, 4xx/5xx responses) are returned as
// ordinary errors. Callers never need to recover from a panic or distinguish
// transport exceptions from a well-formed call.
//
// Optional parameters use pointer fields so that an explicit false or zero
// survives the trip: a nil pointer means "not supplied" and the field is
// omitted from the request, while a pointer to false is transmitted. This
// matters for partial updates, where the remote service must not touch
// fields the caller did not mention.
package honeybadger
