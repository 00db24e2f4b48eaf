// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the dive-log API.
//
// It owns the listener lifecycle: startup, signal handling (SIGINT,
// SIGTERM, SIGQUIT) and graceful shutdown with a bounded drain period.
package server
