// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
)

const (
	// defaultQueryTimeout bounds one introspection HTTP attempt.
	defaultQueryTimeout = 60 * time.Second
	// maxErrorBodyBytes limits response text quoted in query errors.
	maxErrorBodyBytes = 512
)

// RetryConfig configures transport retries of the introspection request.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// DefaultRetryConfig returns the retry settings used by NewLocalRuntime.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
	}
}

// LocalRuntime implements Runtime for a local process: net/http transport,
// the local file system and the system clock.
type LocalRuntime struct {
	client   *http.Client
	executor failsafe.Executor[*http.Response]
	args     []string
	now      func() time.Time
}

// LocalRuntimeOption customizes a LocalRuntime.
type LocalRuntimeOption func(*LocalRuntime)

// WithHTTPClient replaces the HTTP client used for queries.
func WithHTTPClient(client *http.Client) LocalRuntimeOption {
	return func(runtime *LocalRuntime) {
		if client != nil {
			runtime.client = client
		}
	}
}

// WithRetryConfig replaces the transport retry policy.
func WithRetryConfig(cfg RetryConfig) LocalRuntimeOption {
	return func(runtime *LocalRuntime) {
		runtime.executor = failsafe.With(newQueryRetryPolicy(cfg))
	}
}

// WithClock replaces the clock used by Date.
func WithClock(now func() time.Time) LocalRuntimeOption {
	return func(runtime *LocalRuntime) {
		if now != nil {
			runtime.now = now
		}
	}
}

// NewLocalRuntime creates a runtime serving the given invocation arguments.
func NewLocalRuntime(args []string, opts ...LocalRuntimeOption) *LocalRuntime {
	runtime := &LocalRuntime{
		client:   &http.Client{Timeout: defaultQueryTimeout},
		executor: failsafe.With(newQueryRetryPolicy(DefaultRetryConfig())),
		args:     slices.Clone(args),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(runtime)
	}

	return runtime
}

// errBuildRequest marks request construction failures, which never succeed on retry.
var errBuildRequest = errors.New("build request")

// shouldRetryQuery retries network errors, rate limits and gateway failures.
func shouldRetryQuery(resp *http.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled) &&
			!errors.Is(err, context.DeadlineExceeded) &&
			!errors.Is(err, errBuildRequest)
	}

	if resp == nil {
		return true
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// newQueryRetryPolicy builds the transport retry policy.
//
//nolint:bodyclose // [*http.Response] is a type parameter here, not a live response
func newQueryRetryPolicy(cfg RetryConfig) retrypolicy.RetryPolicy[*http.Response] {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 100 * time.Millisecond
	}

	if cfg.MaxDelay < cfg.BaseDelay {
		cfg.MaxDelay = cfg.BaseDelay
	}

	return retrypolicy.NewBuilder[*http.Response]().
		WithBackoff(cfg.BaseDelay, cfg.MaxDelay).
		WithMaxRetries(cfg.MaxRetries).
		WithJitterFactor(0.1).
		HandleIf(shouldRetryQuery).
		Build()
}

// Date returns the local calendar date.
func (runtime *LocalRuntime) Date(_ context.Context) (string, error) {
	return runtime.now().Format(time.DateOnly), nil
}

// Args returns the arguments given to NewLocalRuntime.
func (runtime *LocalRuntime) Args(_ context.Context) ([]string, error) {
	return slices.Clone(runtime.args), nil
}

// Query posts request as JSON to url and returns the response body.
func (runtime *LocalRuntime) Query(ctx context.Context, url string, request GraphQLRequest, headers map[string]string) (json.RawMessage, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	resp, err := runtime.executor.WithContext(ctx).Get(func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errBuildRequest, err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		for name, value := range headers {
			req.Header.Set(name, value)
		}

		resp, err := runtime.client.Do(req)
		if err == nil && shouldRetryQuery(resp, nil) {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		return resp, err
	})
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("post %s: status %s: %s", url, resp.Status, truncateBody(data))
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("post %s: response is not JSON: %s", url, truncateBody(data))
	}

	return json.RawMessage(data), nil
}

// truncateBody shortens a response body for error messages.
func truncateBody(data []byte) string {
	text := strings.TrimSpace(string(data))
	if len(text) > maxErrorBodyBytes {
		text = text[:maxErrorBodyBytes] + "..."
	}

	return text
}

// ReadFile reads the file at path.
func (runtime *LocalRuntime) ReadFile(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// PrepareOutputDirectory creates output and its parents.
func (runtime *LocalRuntime) PrepareOutputDirectory(_ context.Context, output string) error {
	//nolint:gosec // generated documentation is meant to be served and read by others.
	return os.MkdirAll(output, 0o755)
}

// WriteFile writes contents to output/name. name must be a plain file name;
// type names come from the schema and may contain path separators.
func (runtime *LocalRuntime) WriteFile(_ context.Context, output, name, contents string) error {
	if err := checkFileName(name); err != nil {
		return err
	}

	//nolint:gosec // generated documentation is meant to be served and read by others.
	return os.WriteFile(filepath.Join(output, name), []byte(contents), 0o644)
}

// checkFileName rejects names that would resolve outside their directory.
func checkFileName(name string) error {
	if !filepath.IsLocal(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q is not a file name", ErrWriteFile, name)
	}

	return nil
}
