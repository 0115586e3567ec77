package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/gym-console/app/auth"
	"github.com/vibast-solutions/gym-console/app/factory"
)

const (
	RequestIDHeader = "X-Request-ID"

	maxErrorBodyBytes = 64 << 10
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrDecodeResponse = errors.New("malformed response body")
)

// requester is the transport contract the resource clients depend on.
type requester interface {
	Do(ctx context.Context, method, path string, body, out interface{}) error
}

// API is the HTTP transport to the gym API. It is safe for concurrent use.
type API struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     logrus.FieldLogger
}

type Option func(*API)

func WithToken(token string) Option {
	return func(a *API) {
		a.token = strings.TrimSpace(token)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(a *API) {
		if httpClient != nil {
			a.httpClient = httpClient
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(a *API) {
		if timeout > 0 {
			a.httpClient = &http.Client{Timeout: timeout, Transport: a.httpClient.Transport}
		}
	}
}

func NewAPI(baseURL string, opts ...Option) *API {
	a := &API{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     factory.NewModuleLogger("gym-api-client"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) BaseURL() string {
	return a.baseURL
}

// Do performs one round trip. body is JSON-encoded when non-nil and the
// response is decoded into out when out is non-nil. Non-2xx responses are
// returned as *APIError.
func (a *API) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := a.tokenFor(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = fmt.Sprintf("rest-%s", uuid.NewString())
	}
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	latency := time.Since(start)
	entry := a.logger.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
		"latency":    latency.String(),
	})
	if err != nil {
		entry.WithError(err).Debug("api_request_failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	entry = entry.WithField("status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp)
		entry.WithError(apiErr).Debug("api_request")
		return apiErr
	}
	entry.Debug("api_request")

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDecodeResponse, method, path, err)
	}
	return nil
}

func (a *API) tokenFor(ctx context.Context) string {
	if token := auth.TokenFromContext(ctx); token != "" {
		return token
	}
	return a.token
}

func Get[T any](ctx context.Context, r requester, path string) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func Post[T any](ctx context.Context, r requester, path string, body interface{}) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodPost, path, body, &out)
	return out, err
}

func Put[T any](ctx context.Context, r requester, path string, body interface{}) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodPut, path, body, &out)
	return out, err
}

func Patch[T any](ctx context.Context, r requester, path string, body interface{}) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodPatch, path, body, &out)
	return out, err
}

func Delete(ctx context.Context, r requester, path string) error {
	return r.Do(ctx, http.MethodDelete, path, nil, nil)
}

type requestIDContextKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDContextKey{}).(string)
	return requestID
}
