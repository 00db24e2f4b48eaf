// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/dive-log/internal/config"
	"github.com/MKhiriev/dive-log/internal/logger"
	"github.com/MKhiriev/dive-log/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	cfg := &config.StructuredConfig{App: config.App{Environment: "development"}}
	return NewHandler(&service.Services{}, cfg, logger.NewLogger("test", logger.WithWriter(buf)))
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "0192d4e2-7a1c-7b3e-9f00-5c1d2e3f4a5b")
	rec := httptest.NewRecorder()

	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, "0192d4e2-7a1c-7b3e-9f00-5c1d2e3f4a5b", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := newTestHandler(nil)
	rec := httptest.NewRecorder()

	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestWithTraceID_AttachesLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)
	buf.Reset()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "0192d4e2-7a1c-7b3e-9f00-5c1d2e3f4a5c")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "0192d4e2-7a1c-7b3e-9f00-5c1d2e3f4a5c", entry["trace_id"])
	assert.Equal(t, "inside", entry["message"])
}

func TestWithTraceID_RejectsUntrustedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "not a uuid", header: "trace-123"},
		{name: "log injection", header: "abc\",\"level\":\"error"},
		{name: "too long", header: strings.Repeat("a", 65)},
		{name: "uuid padded past limit", header: "urn:uuid:0192d4e2-7a1c-7b3e-9f00-5c1d2e3f4a5b" + strings.Repeat(" ", 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(traceIDHeader, tt.header)
			rec := httptest.NewRecorder()

			h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			assert.NotEqual(t, tt.header, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestTraceIDFromHeader_Canonicalizes(t *testing.T) {
	got, ok := traceIDFromHeader("{0192D4E2-7A1C-7B3E-9F00-5C1D2E3F4A5B}")

	require.True(t, ok)
	assert.Equal(t, "0192d4e2-7a1c-7b3e-9f00-5c1d2e3f4a5b", got)
}
