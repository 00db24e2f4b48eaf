// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func echoBody(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		_, _ = w.Write(b)
	})
}

func TestWithGZipBody_Decompresses(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, `{"name":"Jacques"}`)))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZipBody(echoBody(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"name":"Jacques"}`, rec.Body.String())
}

func TestWithGZipBody_PlainPassthrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`plain`))
	rec := httptest.NewRecorder()

	withGZipBody(echoBody(t)).ServeHTTP(rec, req)

	assert.Equal(t, "plain", rec.Body.String())
}

func TestWithGZipBody_InvalidData(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })
	withGZipBody(next).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_GZIP", decodeBody(t, rec)["code"])
}

func TestGzipRequestThroughRouter(t *testing.T) {
	h := newTestHandler(nil)
	h.services.AuthService = &mockAuthService{}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", bytes.NewReader(gzipBytes(t, `{}`)))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	b, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Logout successful"}`, string(b))
}

func TestWrappedReadCloser_CloseRunsOnce(t *testing.T) {
	calls := 0
	body := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { calls++ }}

	require.NoError(t, body.Close())
	require.NoError(t, body.Close())
	require.NoError(t, body.Close())

	assert.Equal(t, 1, calls)
}

func TestWithGZipBody_ReleasesReader(t *testing.T) {
	tests := []struct {
		name      string
		closeBody int
	}{
		{name: "handler leaves body open", closeBody: 0},
		{name: "handler closes body", closeBody: 1},
		{name: "handler closes body twice", closeBody: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, `{"depth":30}`)))
			req.Header.Set("Content-Encoding", "gzip")

			var body *wrappedReadCloser
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var ok bool
				body, ok = r.Body.(*wrappedReadCloser)
				require.True(t, ok)
				_, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				for i := 0; i < tt.closeBody; i++ {
					require.NoError(t, r.Body.Close())
				}
			})
			withGZipBody(next).ServeHTTP(httptest.NewRecorder(), req)

			require.NotNil(t, body)
			// already released by the middleware; a later Close is a no-op
			released := 0
			body.OnClose = func() { released++ }
			require.NoError(t, body.Close())
			assert.Zero(t, released)
		})
	}
}
