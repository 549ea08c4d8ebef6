// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pankaj Shinde

package http

import "errors"

// Sentinel errors raised by the authentication and authorization middleware.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidRequestBody is returned when a request body cannot be decoded
	// as JSON of the expected shape.
	ErrInvalidRequestBody = errors.New("invalid JSON request body")

	// ErrMissingUserContext is returned by the permission middleware when the
	// request context carries no authenticated identity. It indicates a route
	// guarded by requirePermission without the auth middleware in front.
	ErrMissingUserContext = errors.New("no authenticated user in request context")
)
