// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the dive-log API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as panic recovery, request tracing, access logging,
// security headers, CORS, response compression and bearer authentication
// are handled in this package before requests are delegated to the
// service layer. Every error leaves through writeError, which renders the
// JSON envelope {error, message, code?, details?}.
package http
