// Package api provides an HTTP client for the CMS REST API.
//
// # Overview
//
// This package defines the API client the admin console talks through. It
// handles HTTP communication, JSON and multipart serialization, and
// type-safe representation of the four managed record kinds.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: HTTP client, request building, error mapping
//   - types.go: record structs, controller adapters, validation rules
//   - backends.go: resource.Backend implementations per kind
//
// # REST contract
//
// Per kind R in {photos, videos, services, contacts}:
//
//	GET    /api/{R}/                   list
//	GET    /api/{R}/{id}/              single record
//	POST   /api/{R}/                   create
//	PUT    /api/{R}/{id}/              update
//	DELETE /api/{R}/{id}/              delete
//	POST   /api/{R}/delete-multiple/   bulk delete, body {"ids": [...]}
//
// Photos, videos, and services carry a binary asset and submit multipart
// bodies; the attachment part is omitted on update when the user supplied
// no new file. Contacts are JSON-only.
//
// # Errors
//
// Non-2xx responses are reported as *Error with the status code and the
// server's detail text when the body carried one. Transport and decode
// failures are returned wrapped; nothing in this package retries.
package api
