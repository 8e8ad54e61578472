// Package http implements the JSON API of the document manager.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as session authentication, request tracing, access logging,
// metrics and rate limiting are handled in this package before requests are
// delegated to the service layer.
package http
