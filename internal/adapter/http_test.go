// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upsight-tools/go-datamine/internal/logger"
	"github.com/upsight-tools/go-datamine/models"
)

func newTestService(t *testing.T, serverURL string) *HTTPRemoteService {
	t.Helper()

	svc, err := New(Config{
		BaseURL:  serverURL,
		Username: "alice",
		Password: "s3cret",
	}, logger.Nop())
	require.NoError(t, err)
	return svc
}

// ── New ─────────────────────────────────────────────────────────────────────

func TestNew_EmptyAddress(t *testing.T) {
	_, err := New(Config{}, logger.Nop())
	require.Error(t, err)
}

func TestNew_SchemelessAddressGetsHTTPS(t *testing.T) {
	svc, err := New(Config{BaseURL: "analytics.example.com/datamine2"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "https://analytics.example.com/datamine2", svc.client.BaseURL)
}

func TestNew_TrailingSlashTrimmed(t *testing.T) {
	svc, err := New(Config{BaseURL: "https://analytics.example.com/datamine2/"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "https://analytics.example.com/datamine2", svc.client.BaseURL)
}

// ── CheckAccess ─────────────────────────────────────────────────────────────

func TestCheckAccess_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "alice", user)
		assert.Equal(t, "s3cret", pass)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	require.NoError(t, svc.CheckAccess(context.Background()))
}

func TestCheckAccess_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("user access denied"))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	err := svc.CheckAccess(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCheckAccess_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	assert.ErrorIs(t, svc.CheckAccess(context.Background()), ErrUnauthorized)
}

// ── SubmitQuery ─────────────────────────────────────────────────────────────

func TestSubmitQuery_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/query/", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "select 1", r.PostFormValue("query"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 1742}`))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	job, err := svc.SubmitQuery(context.Background(), "select 1")

	require.NoError(t, err)
	assert.Equal(t, "1742", job.ID)
}

func TestSubmitQuery_StringID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "job-42"}`))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	job, err := svc.SubmitQuery(context.Background(), "select 1")

	require.NoError(t, err)
	assert.Equal(t, "job-42", job.ID)
}

func TestSubmitQuery_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("malformed query"))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	_, err := svc.SubmitQuery(context.Background(), "select oops")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "malformed query")
}

func TestSubmitQuery_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	_, err := svc.SubmitQuery(context.Background(), "select 1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing job id")
}

// ── FetchResult ─────────────────────────────────────────────────────────────

func TestFetchResult_Ready(t *testing.T) {
	payload := "item,inv\napples,1\nbananas,2\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query/1742/results", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	body, err := svc.FetchResult(context.Background(), "1742")
	require.NoError(t, err)
	defer func() { _ = body.Close() }()

	got, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, payload, string(got))
}

func TestFetchResult_Pending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	_, err := svc.FetchResult(context.Background(), "1742")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrResultPending)
}

func TestFetchResult_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such query"))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	_, err := svc.FetchResult(context.Background(), "unknown")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "no such query")
}
