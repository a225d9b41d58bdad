// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is present but
	// is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoClaimsInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoClaimsInContext = errors.New("no token claims in request context")

	// ErrForbidden is returned when the verified role may not use the route.
	ErrForbidden = errors.New("insufficient role")

	ErrInvalidJSON     = errors.New("invalid JSON was passed")
	ErrInvalidPromptID = errors.New("invalid prompt id")
)
