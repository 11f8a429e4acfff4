package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"estudiapro_client/internal/config"
	"estudiapro_client/pkg/logger"
	"estudiapro_client/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// APIError is a failed HTTP response normalized to a status and a
// human-readable message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Dispatcher is the single entry point for every request the facade makes.
// It checks the mode preference per call and routes either to the in-process
// simulator or over HTTP, returning raw JSON in both cases so callers cannot
// tell the modes apart.
type Dispatcher struct {
	cfg        *config.Config
	prefs      *Prefs
	demo       *DemoBackend
	httpClient *http.Client
}

func NewDispatcher(cfg *config.Config, prefs *Prefs, demo *DemoBackend) *Dispatcher {
	// Session cookies ride along like a browser's credentials:'include'.
	jar, _ := cookiejar.New(nil)
	return &Dispatcher{
		cfg:   cfg,
		prefs: prefs,
		demo:  demo,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}
}

// Request performs one logical API call. The mode is read once at entry, so
// toggling demo mode mid-flight never reroutes a request already started.
func (d *Dispatcher) Request(ctx context.Context, endpoint Endpoint, method string, payload any, requiresAuth bool) (json.RawMessage, error) {
	ctx, span := tracing.Tracer.Start(ctx, "api.request")
	span.SetAttributes(
		attribute.String("api.endpoint", string(endpoint)),
		attribute.String("api.method", method),
	)
	defer span.End()

	if d.prefs.DemoMode() {
		return d.requestDemo(ctx, endpoint, method, payload, requiresAuth)
	}
	return d.requestLive(ctx, endpoint, method, payload, requiresAuth)
}

func (d *Dispatcher) requestDemo(ctx context.Context, endpoint Endpoint, method string, payload any, requiresAuth bool) (json.RawMessage, error) {
	result, err := d.demo.Handle(ctx, endpoint, method, payload, requiresAuth)
	if err != nil {
		logger.Log.Error("demo request failed",
			zap.String("endpoint", string(endpoint)),
			zap.String("method", method),
			zap.Error(err))
		return nil, err
	}

	// Round-tripping through JSON makes demo results indistinguishable from
	// live ones and detaches them from the seed store.
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (d *Dispatcher) requestLive(ctx context.Context, endpoint Endpoint, method string, payload any, requiresAuth bool) (json.RawMessage, error) {
	url := strings.TrimRight(d.cfg.Client.BaseURL, "/") + string(endpoint)

	var body io.Reader
	if payload != nil && hasBody(method) {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if requiresAuth {
		if token := d.prefs.Token(); token != "" {
			req.Header.Set("Authorization", "Token "+token)
		}
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		logger.Log.Error("request failed",
			zap.String("endpoint", string(endpoint)),
			zap.String("method", method),
			zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(raw, resp.StatusCode),
		}
		logger.Log.Error("request failed",
			zap.String("endpoint", string(endpoint)),
			zap.String("method", method),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return nil, apiErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return json.RawMessage("null"), nil
	}
	return raw, nil
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// errorMessage digs the human-readable message out of the error body. The
// backend is not consistent about the field name.
func errorMessage(raw []byte, status int) string {
	var body struct {
		Message        string   `json:"message"`
		Detail         string   `json:"detail"`
		NonFieldErrors []string `json:"non_field_errors"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Message != "":
			return body.Message
		case body.Detail != "":
			return body.Detail
		case len(body.NonFieldErrors) > 0:
			return body.NonFieldErrors[0]
		}
	}
	return fmt.Sprintf("Error %d", status)
}
