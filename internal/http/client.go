package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/mcapi/internal/auth"
	"github.com/fivetwenty-io/mcapi/internal/constants"
	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

// Request is one API call relative to the client base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a completed API call. Body holds the raw response body.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Cached     bool
}

// Client sends JSON requests to the API. It is safe for concurrent use.
type Client struct {
	baseURL       string
	authenticator auth.Authenticator
	httpClient    *retryablehttp.Client
	userAgent     string
	logger        mcapi.Logger
	debug         bool
	interceptors  *mcapi.InterceptorChain
	cache         *mcapi.CacheManager
	cacheTTL      time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger for transport and retry messages.
func WithLogger(logger mcapi.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		if logger != nil {
			c.httpClient.Logger = &leveledLogger{logger: logger}
		}
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig lets the transport retry 5xx, 429 and connection errors.
// 4xx responses are never retried.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithInterceptors installs an interceptor chain.
func WithInterceptors(chain *mcapi.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithCache enables the GET response cache.
func WithCache(cache mcapi.Cache, options *mcapi.CacheOptions) Option {
	return func(c *Client) {
		if cache == nil {
			return
		}

		c.cache = mcapi.NewCacheManager(cache, options)
		if options != nil {
			c.cacheTTL = options.TTL
		}
	}
}

// WithHTTPClient replaces the underlying http.Client, e.g. for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a new API transport. A nil authenticator sends
// unauthenticated requests.
func NewClient(baseURL string, authenticator auth.Authenticator, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		authenticator: authenticator,
		httpClient:    retryClient,
		userAgent:     constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CacheStats returns the cache statistics, or nil when caching is off.
func (c *Client) CacheStats() *mcapi.CacheStats {
	if c.cache == nil {
		return nil
	}

	stats := c.cache.GetStats()

	return &stats
}

// Do sends a request. For non-2xx responses both the response and a
// *mcapi.TransportError are returned. A GET answered from the cache is not
// sent, so no interceptor sees it.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	cacheKey := ""
	if c.cache != nil && req.Method == http.MethodGet {
		cacheKey = c.cache.GetCacheKey(req.Method, req.Path, req.Query)

		cached, cacheErr := c.cache.Get(ctx, cacheKey)
		if cacheErr == nil {
			c.logDebug("HTTP Cache Hit", map[string]interface{}{"method": req.Method, "path": req.Path})

			return &Response{StatusCode: http.StatusOK, Body: cached, Cached: true}, nil
		}
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	intercepted := &mcapi.Request{
		Method:  req.Method,
		Path:    req.Path,
		Query:   req.Query,
		Headers: make(http.Header),
		Body:    body,
	}

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, intercepted)

	interceptedResp := &mcapi.Response{Error: err}
	if resp != nil {
		interceptedResp.StatusCode = resp.StatusCode
		interceptedResp.Headers = resp.Headers
		interceptedResp.Body = resp.Body
	}

	interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, interceptedResp)
	if err != nil {
		return resp, err
	}

	if interceptErr != nil {
		return resp, interceptErr
	}

	c.updateCache(ctx, req, cacheKey, resp)

	return resp, nil
}

func (c *Client) send(ctx context.Context, req *mcapi.Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var rawBody interface{}
	if req.Body != nil {
		rawBody = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if c.authenticator != nil {
		err = c.authenticator.Authorize(ctx, httpReq.Request)
		if err != nil {
			return nil, fmt.Errorf("authorizing request: %w", err)
		}
	}

	c.logDebug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
		"body":   string(req.Body),
	})

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logDebug("HTTP Response", map[string]interface{}{
		"status":   httpResp.StatusCode,
		"duration": time.Since(start).String(),
		"body":     string(respBody),
	})

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return resp, mcapi.ParseTransportError(httpResp.StatusCode, respBody)
	}

	return resp, nil
}

func (c *Client) updateCache(ctx context.Context, req *Request, cacheKey string, resp *Response) {
	if c.cache == nil || resp == nil {
		return
	}

	if req.Method != http.MethodGet {
		err := c.cache.Clear(ctx)
		if err != nil && c.logger != nil {
			c.logger.Warn("failed to clear response cache", map[string]interface{}{"error": err.Error()})
		}

		return
	}

	if !c.cache.ShouldCache(req.Method, req.Path, resp.StatusCode) {
		return
	}

	err := c.cache.SetWithETag(ctx, cacheKey, resp.Body, resp.Headers.Get("ETag"), c.cacheTTL)
	if err != nil && c.logger != nil {
		c.logger.Warn("failed to cache response", map[string]interface{}{"error": err.Error()})
	}
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

func encodeBody(body interface{}) ([]byte, error) {
	switch typed := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return typed, nil
	case json.RawMessage:
		return typed, nil
	case io.Reader:
		var buf bytes.Buffer

		_, err := buf.ReadFrom(typed)
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}

		return buf.Bytes(), nil
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		return data, nil
	}
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put sends a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch sends a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// leveledLogger adapts mcapi.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger mcapi.Logger
}

func keysAndValuesToFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2) //nolint:mnd // key/value pairs

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}

		fields[key] = keysAndValues[i+1]
	}

	return fields
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValuesToFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValuesToFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValuesToFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValuesToFields(keysAndValues))
}
