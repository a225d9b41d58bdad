// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errServerStoppedUnexpectedly is returned by run when a transport returns
// without error before shutdown was requested.
var errServerStoppedUnexpectedly = errors.New("server stopped unexpectedly")

// errNoServersAreCreated is returned by NewServer when no transport has both
// an address and a handler.
var errNoServersAreCreated = errors.New("no servers are created")
