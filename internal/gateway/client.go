// Package gateway is the HTTP client for the upstream payment API.
package gateway

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

	"backoffice/internal/model"

	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "https://recruit.paysbypays.com/api/v1"
	DefaultTimeout = 10 * time.Second
)

// Upstream endpoint paths. The payment type path keeps the upstream's spelling.
const (
	PathPayments        = "/payments/list"
	PathMerchants       = "/merchants/list"
	PathMerchantDetails = "/merchants/details/"
	PathPaymentStatus   = "/common/payment-status/all"
	PathPaymentType     = "/common/paymemt-type/all"
	PathMerchantStatus  = "/common/mcht-status/all"
)

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	BaseURL    string
	HealthURL  string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client talks to the upstream payment API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	healthURL  string
	log        zerolog.Logger
}

// PingResult is the outcome of a health probe that reached the server.
type PingResult struct {
	StatusCode int
	Elapsed    time.Duration
}

// OK reports a 2xx answer.
func (p PingResult) OK() bool { return p.StatusCode >= 200 && p.StatusCode < 300 }

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// NewClient creates a Client.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", base, err)
	}

	health := strings.TrimSpace(opts.HealthURL)
	if health == "" {
		derived, err := DeriveHealthURL(base)
		if err != nil {
			return nil, err
		}
		health = derived
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		healthURL:  health,
		log:        opts.Logger.With().Str("component", "gateway").Logger(),
	}, nil
}

// DeriveHealthURL returns the /health URL at the server root of base.
func DeriveHealthURL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid base url %q", base)
	}
	return u.Scheme + "://" + u.Host + "/health", nil
}

// BaseURL returns the API base URL in use.
func (c *Client) BaseURL() string { return c.baseURL }

// HealthURL returns the health probe URL in use.
func (c *Client) HealthURL() string { return c.healthURL }

// ListPayments fetches every payment.
func (c *Client) ListPayments(ctx context.Context) ([]model.Transaction, error) {
	return getList[model.Transaction](ctx, c, PathPayments)
}

// ListMerchants fetches every merchant.
func (c *Client) ListMerchants(ctx context.Context) ([]model.Merchant, error) {
	return getList[model.Merchant](ctx, c, PathMerchants)
}

// PaymentStatusCodes fetches the payment status code table.
func (c *Client) PaymentStatusCodes(ctx context.Context) ([]model.CodeItem, error) {
	return getList[model.CodeItem](ctx, c, PathPaymentStatus)
}

// PaymentTypeCodes fetches the payment type code table.
func (c *Client) PaymentTypeCodes(ctx context.Context) ([]model.CodeItem, error) {
	return getList[model.CodeItem](ctx, c, PathPaymentType)
}

// MerchantStatusCodes fetches the merchant status code table.
func (c *Client) MerchantStatusCodes(ctx context.Context) ([]model.CodeItem, error) {
	return getList[model.CodeItem](ctx, c, PathMerchantStatus)
}

// MerchantDetail fetches one merchant. A missing record yields ErrNotFound.
func (c *Client) MerchantDetail(ctx context.Context, mchtCode string) (model.MerchantDetail, error) {
	endpoint := PathMerchantDetails + url.PathEscape(mchtCode)
	data, err := c.getData(ctx, endpoint)
	if err != nil {
		return model.MerchantDetail{}, err
	}
	if isEmpty(data) {
		return model.MerchantDetail{}, fmt.Errorf("merchant %s: %w", mchtCode, ErrNotFound)
	}

	var detail model.MerchantDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("Failed to decode merchant detail")
		return model.MerchantDetail{}, malformedError(endpoint, err)
	}
	return detail, nil
}

// Ping probes the health URL. An error means the server could not be reached;
// any HTTP answer, healthy or not, is returned as a PingResult.
func (c *Client) Ping(ctx context.Context) (PingResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, nil)
	if err != nil {
		return PingResult{}, fmt.Errorf("failed to create health request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("endpoint", c.healthURL).Msg("Health check request failed")
		return PingResult{}, transportError(c.healthURL, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return PingResult{StatusCode: resp.StatusCode, Elapsed: time.Since(start)}, nil
}

func getList[T any](ctx context.Context, c *Client, endpoint string) ([]T, error) {
	data, err := c.getData(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	items := []T{}
	if isEmpty(data) || data[0] != '[' {
		c.log.Warn().Str("endpoint", endpoint).Msg("Response data is not a list, treating as empty")
		return items, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("Response list could not be decoded, treating as empty")
		return items, nil
	}
	for i, raw := range raws {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			c.log.Warn().Err(err).Str("endpoint", endpoint).Int("index", i).Msg("Skipping undecodable list element")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// getData performs a GET and returns the raw "data" member of the envelope.
func (c *Client) getData(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("Upstream request failed")
		return nil, transportError(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.log.Error().Int("status_code", resp.StatusCode).Str("endpoint", endpoint).Msg("Upstream returned unexpected status")
		return nil, &StatusError{Endpoint: endpoint, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("Failed to read upstream response")
		return nil, transportError(endpoint, err)
	}

	trimmed := bytes.TrimSpace(body)
	if json.Valid(trimmed) && (len(trimmed) == 0 || trimmed[0] != '{') {
		c.log.Warn().Str("endpoint", endpoint).Msg("Response body is not an object, treating data as missing")
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("Failed to decode upstream envelope")
		return nil, malformedError(endpoint, err)
	}
	return bytes.TrimSpace(env.Data), nil
}

func isEmpty(data json.RawMessage) bool {
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}
