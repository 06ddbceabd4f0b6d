// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/upsight-tools/go-datamine/internal/logger"
	"github.com/upsight-tools/go-datamine/models"
)

const defaultTimeout = 30 * time.Second

// Config holds the settings needed to build an [HTTPRemoteService].
type Config struct {
	// BaseURL is the DataMine API root, e.g.
	// "https://analytics.upsight.com/dashboard/datamine2".
	BaseURL string

	// Username and Password are sent as HTTP basic auth on every request.
	Username string
	Password string

	// Timeout bounds each individual request. Zero means defaultTimeout.
	Timeout time.Duration
}

// HTTPRemoteService is the resty-backed transport to the DataMine service.
// It owns the authenticated HTTP session; Close releases the underlying
// idle connections.
type HTTPRemoteService struct {
	client *resty.Client
	logger *logger.Logger
}

// New constructs an [HTTPRemoteService] from cfg. It normalises and
// validates the base URL, configures basic auth and the request timeout,
// and attaches an X-Request-Id header to every outgoing request. No network
// I/O happens here; credentials are first used on [HTTPRemoteService.CheckAccess].
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func New(cfg Config, log *logger.Logger) (*HTTPRemoteService, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid datamine server address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetBasicAuth(cfg.Username, cfg.Password)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	return &HTTPRemoteService{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CheckAccess performs the pre-flight session check: a GET against the API
// root using the configured credentials. Rejected credentials surface as
// [ErrUnauthorized] or [ErrForbidden]; any other non-2xx status maps to the
// corresponding sentinel from errors.go.
func (h *HTTPRemoteService) CheckAccess(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return fmt.Errorf("check access request: %w", err)
	}

	return mapHTTPError(resp)
}

// SubmitQuery POSTs query as a form field to POST /query/ and decodes the
// acknowledgment into a [models.QueryJob]. The service answers 201 Created
// with a JSON body carrying the job id.
func (h *HTTPRemoteService) SubmitQuery(ctx context.Context, query string) (models.QueryJob, error) {
	var job models.QueryJob

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"query": query}).
		SetResult(&job).
		Post("/query/")
	if err != nil {
		return models.QueryJob{}, fmt.Errorf("submit query request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.QueryJob{}, err
	}

	if job.ID == "" {
		return models.QueryJob{}, fmt.Errorf("submit query: response missing job id")
	}

	h.logger.Debug().Str("query_id", job.ID).Msg("query accepted")
	return job, nil
}

// FetchResult GETs /query/{id}/results and returns the raw response body as
// a stream the caller must close. While the service is still processing the
// job it answers 202 Accepted, which surfaces as [models.ErrResultPending];
// callers poll until the stream is available.
func (h *HTTPRemoteService) FetchResult(ctx context.Context, queryID string) (io.ReadCloser, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(fmt.Sprintf("/query/%s/results", url.PathEscape(queryID)))
	if err != nil {
		return nil, fmt.Errorf("fetch result request: %w", err)
	}

	body := resp.RawBody()

	if resp.StatusCode() == http.StatusAccepted {
		drainAndClose(body)
		return nil, fmt.Errorf("query %s: %w", queryID, models.ErrResultPending)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		// Unparsed responses keep their body on the wire; read a bounded
		// amount for the error message before closing.
		detail, _ := io.ReadAll(io.LimitReader(body, 4096))
		drainAndClose(body)
		return nil, mapStatusError(resp.StatusCode(), strings.TrimSpace(string(detail)))
	}

	return body, nil
}

// Close releases the idle connections held by the underlying HTTP session.
// The service value must not be used afterwards.
func (h *HTTPRemoteService) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}

func drainAndClose(rc io.ReadCloser) {
	if rc == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 4096))
	_ = rc.Close()
}
