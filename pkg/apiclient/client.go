/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/unikorn-cloud/webtest/pkg/config"
	"github.com/unikorn-cloud/webtest/pkg/constants"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/unikorn-cloud/webtest/pkg/apiclient"

	// DefaultTimeout applies when no timeout option is given.
	DefaultTimeout = 10 * time.Second
)

// defaultTracerProvider records spans in process only, which is all we need
// for valid trace and span IDs on the wire.
//
//nolint:gochecknoglobals
var defaultTracerProvider = sync.OnceValue(func() trace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.AlwaysSample()))
})

// Client issues requests against a single base URL.
type Client struct {
	baseURL      string
	client       *http.Client
	timeout      time.Duration
	tracer       trace.Tracer
	propagator   propagation.TextMapPropagator
	logRequests  bool
	logResponses bool
	endpoints    *Endpoints

	// lock guards headers.
	lock    sync.RWMutex
	headers http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each request end to end.  It applies to the client
// given by WithHTTPClient too, whatever the option order.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.  The client is copied
// when a timeout is also set, so the caller's value is left untouched.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithHeaders adds default headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers.Set(k, v)
		}
	}
}

// WithRequestLogging logs a line per request and, optionally, each body.
func WithRequestLogging(requests, responses bool) Option {
	return func(c *Client) {
		c.logRequests = requests
		c.logResponses = responses
	}
}

// WithTracerProvider records request spans with the given provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = provider.Tracer(tracerName)
	}
}

// New returns a client for baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		tracer:     defaultTracerProvider().Tracer(tracerName),
		propagator: propagation.TraceContext{},
		endpoints:  NewEndpoints(),
		headers: http.Header{
			"User-Agent": []string{constants.UserAgent()},
			"Accept":     []string{"application/json"},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 {
		client := *c.client
		client.Timeout = c.timeout
		c.client = &client
	}

	log.Info().Str("baseURL", c.baseURL).Msg("initialized API client")

	return c
}

// NewFromSettings returns a client for the configured API.  API_TIMEOUT is
// kept unless opts carry their own WithTimeout.
func NewFromSettings(settings *config.Settings, opts ...Option) *Client {
	defaults := []Option{
		WithTimeout(settings.APITimeout),
		WithRequestLogging(settings.LogRequests, settings.LogResponses),
	}

	return New(settings.APIBaseURL, append(defaults, opts...)...)
}

// BaseURL returns the URL every relative path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetHeader sets a default header for all subsequent requests.
func (c *Client) SetHeader(key, value string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.headers.Set(key, value)

	log.Debug().Str("header", key).Msg("header set")
}

// SetAuthToken sets the Authorization header, the scheme defaults to Bearer.
func (c *Client) SetAuthToken(token, scheme string) {
	if scheme == "" {
		scheme = "Bearer"
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.headers.Set("Authorization", scheme+" "+token)

	log.Debug().Str("scheme", scheme).Msg("authorization header set")
}

// Close releases pooled connections.  The client may still be used after.
func (c *Client) Close() {
	log.Info().Str("baseURL", c.baseURL).Msg("closing API client")

	c.client.CloseIdleConnections()
}

// RequestOption tweaks a single request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	query  url.Values
	header http.Header
}

// WithQuery appends query parameters.
func WithQuery(values url.Values) RequestOption {
	return func(o *requestOptions) {
		for k, vs := range values {
			for _, v := range vs {
				o.query.Add(k, v)
			}
		}
	}
}

// WithHeader sets a header on this request only, overriding defaults.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.header.Set(key, value)
	}
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, opts...)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body, opts...)
}

// Put issues a PUT request.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, body, opts...)
}

// Patch issues a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, path, body, opts...)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, opts...)
}

// URL resolves path against the base URL.  Absolute URLs pass through.
func (c *Client) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// encodeBody turns a request body into a reader and content type.  Raw bytes
// and readers are assumed to be JSON already, url.Values are form encoded and
// anything else is marshaled to JSON.
func encodeBody(body any) (io.Reader, string, error) {
	switch t := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return bytes.NewReader(t), "application/json", nil
	case io.Reader:
		return t, "application/json", nil
	case url.Values:
		return strings.NewReader(t.Encode()), "application/x-www-form-urlencoded", nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("marshaling request body: %w", err)
	}

	return bytes.NewReader(data), "application/json", nil
}

// Do issues a request.  Only transport and encoding problems are errors, the
// status code is left to the caller.
//
//nolint:cyclop
func (c *Client) Do(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Response, error) {
	fullURL := c.URL(path)

	reader, contentType, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	options := &requestOptions{
		query:  url.Values{},
		header: http.Header{},
	}

	for _, opt := range opts {
		opt(options)
	}

	ctx, span := c.tracer.Start(ctx, method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", fullURL),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.lock.RLock()
	for k, vs := range c.headers {
		req.Header[k] = slices.Clone(vs)
	}
	c.lock.RUnlock()

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for k, vs := range options.header {
		req.Header[k] = vs
	}

	if len(options.query) > 0 {
		query := req.URL.Query()

		for k, vs := range options.query {
			for _, v := range vs {
				query.Add(k, v)
			}
		}

		req.URL.RawQuery = query.Encode()
	}

	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	traceID := span.SpanContext().TraceID().String()

	log.Info().Str("method", method).Str("url", req.URL.String()).Msg("sending request")

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "http request failed")

		log.Error().Err(err).Str("method", method).Str("path", path).Dur("duration", duration).Str("traceID", traceID).Msg("http request failed")

		return nil, fmt.Errorf("%s %s: %w", method, fullURL, err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)

		log.Error().Err(err).Str("method", method).Str("path", path).Int("status", resp.StatusCode).Str("traceID", traceID).Msg("reading response body")

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, resp.Status)
	}

	log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("response received")

	if c.logRequests {
		log.Info().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Dur("duration", duration).Str("traceID", traceID).Msg("request complete")
	}

	if c.logResponses && len(respBody) > 0 {
		log.Info().Str("method", method).Str("path", path).Bytes("body", respBody).Msg("response body")
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       respBody,
		Duration:   duration,
		TraceID:    traceID,
	}, nil
}
