// Package http is the REST transport of the prompt tracker.
//
// It wires chi routes for registration, login, prompt submission and
// listing, and the admin-only prompt removal. Request tracing, access logging,
// CORS and bearer-token authentication run here before a call reaches the
// service layer; service errors are turned into status codes by a single table.
package http
