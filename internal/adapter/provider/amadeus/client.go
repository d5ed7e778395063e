// Package amadeus implements the flight offer provider on top of the Amadeus
// Self-Service REST API.
package amadeus

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/logger"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/metrics"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/retry"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/tracing"
)

// ProviderName identifies this provider in errors, logs and metrics.
const ProviderName = "amadeus"

// clientRefHeader carries the caller's request ID to Amadeus.
const clientRefHeader = "Ama-Client-Ref"

// API paths.
const (
	tokenPath     = "/v1/security/oauth2/token"
	searchPath    = "/v2/shopping/flight-offers"
	pricingPath   = "/v1/shopping/flight-offers/pricing"
	locationsPath = "/v1/reference-data/locations"
)

// maxResponseBytes bounds how much of a provider response is read.
const maxResponseBytes = 16 << 20

// Config holds the Amadeus client settings.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string

	// DefaultCurrency is sent as currencyCode when the request has none. Empty sends nothing.
	DefaultCurrency string

	// RateLimit is the sustained request rate per second; Burst the bucket size.
	RateLimit float64
	Burst     int

	// RequestTimeout bounds a single HTTP attempt.
	RequestTimeout time.Duration

	Retry retry.Config
}

// Client is an Amadeus API client. It implements domain.FlightOfferProvider
// and domain.AirportLocator. A Client is safe for concurrent use.
type Client struct {
	baseURL         string
	defaultCurrency string
	httpClient      *http.Client
	limiter         *rate.Limiter
	retry           retry.Config
	log             *logger.Logger
	metrics         *metrics.Metrics
	tracer          trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l.WithProvider(ProviderName) }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient builds a client whose HTTP transport fetches and refreshes an
// OAuth2 client-credentials token on demand.
func NewClient(cfg Config, opts ...Option) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	creds := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     baseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: cfg.RequestTimeout})
	httpClient := creds.Client(tokenCtx)
	httpClient.Timeout = cfg.RequestTimeout

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	retryCfg := cfg.Retry
	retryCfg.RetryIf = retry.SkipPermanent

	c := &Client{
		baseURL:         baseURL,
		defaultCurrency: cfg.DefaultCurrency,
		httpClient:      httpClient,
		limiter:         rate.NewLimiter(limit, burst),
		retry:           retryCfg,
		log:             logger.Nop(),
		metrics:         metrics.NewNop(),
		tracer:          tracing.Tracer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return ProviderName
}

// call is one logical API operation, retried as a whole.
type call struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      []byte
	header    http.Header
}

// do runs a call with rate limiting, retries, tracing and metrics, and
// returns the response body of the first successful attempt.
// Every returned error is a *domain.ProviderError.
func (c *Client) do(ctx context.Context, cl call) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "amadeus."+cl.operation, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", cl.method),
			attribute.String("http.route", cl.path),
		))
	defer span.End()

	start := time.Now()

	cfg := c.retry.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		c.metrics.IncProviderRetry(ProviderName, cl.operation)
		c.log.WithTrace(ctx).Warn().
			Err(err).
			Str("operation", cl.operation).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("Retrying provider call")
	})

	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.attempt(ctx, cl)
	}, cfg)
	err = c.finalError(ctx, err)

	c.metrics.ObserveProviderCall(ProviderName, cl.operation, err, time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return body, nil
}

// attempt performs one HTTP exchange. Errors that must not be retried are
// wrapped with retry.NewPermanent.
func (c *Client) attempt(ctx context.Context, cl call) ([]byte, error) {
	if c.limiter.Tokens() < 1 {
		c.metrics.IncRateLimitWaits()
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, retry.NewPermanent(c.contextError(ctx, err))
	}

	endpoint := c.baseURL + cl.path
	if len(cl.query) > 0 {
		endpoint += "?" + cl.query.Encode()
	}

	var reqBody io.Reader
	if cl.body != nil {
		reqBody = bytes.NewReader(cl.body)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, endpoint, reqBody)
	if err != nil {
		return nil, retry.NewPermanent(domain.NewProviderError(ProviderName, fmt.Errorf("build request: %w", err)))
	}
	req.Header.Set("Accept", "application/vnd.amadeus+json, application/json")
	if ref := logger.RequestIDFromContext(ctx); ref != "" {
		req.Header.Set(clientRefHeader, ref)
	}
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/vnd.amadeus+json")
	}
	for k, vs := range cl.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, c.transportError(ctx, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		perr := statusError(resp.StatusCode, data)
		if !perr.Retryable {
			return nil, retry.NewPermanent(perr)
		}
		return nil, perr
	}
	return data, nil
}

// transportError classifies a failed exchange: context errors and token
// rejections are final, other network failures are retryable.
func (c *Client) transportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return retry.NewPermanent(c.contextError(ctx, ctx.Err()))
	}

	var tokenErr *oauth2.RetrieveError
	if errors.As(err, &tokenErr) && tokenErr.Response != nil {
		perr := domain.NewProviderStatusError(ProviderName, tokenErr.Response.StatusCode,
			fmt.Errorf("token request rejected: %s", tokenErrorText(tokenErr)))
		if !perr.Retryable {
			return retry.NewPermanent(perr)
		}
		return perr
	}

	return domain.NewRetryableProviderError(ProviderName, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err))
}

func (c *Client) contextError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return domain.NewProviderTimeoutError(ProviderName)
	}
	return domain.NewProviderError(ProviderName, err)
}

// finalError strips the retry marker and makes sure a *domain.ProviderError comes out.
func (c *Client) finalError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var permanent *retry.Permanent
	if errors.As(err, &permanent) {
		err = permanent.Err
	}
	var perr *domain.ProviderError
	if errors.As(err, &perr) {
		return perr
	}
	// retry returns the bare context error when ctx ends between attempts.
	return c.contextError(ctx, err)
}

func tokenErrorText(e *oauth2.RetrieveError) string {
	if e.ErrorDescription != "" {
		return e.ErrorDescription
	}
	if e.ErrorCode != "" {
		return e.ErrorCode
	}
	return http.StatusText(e.Response.StatusCode)
}

var (
	_ domain.FlightOfferProvider = (*Client)(nil)
	_ domain.AirportLocator      = (*Client)(nil)
)
