package payments

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/yigit/classbook/internal/pkg/apperrors"
	"github.com/yigit/classbook/internal/pkg/logger"
)

const intentsPath = "/v1/payment_intents"

// Config holds the payment processor settings
type Config struct {
	APIURL    string
	SecretKey string
	Currency  string
	Timeout   time.Duration
}

// Intent is the part of a processor payment intent the checkout flow needs
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

type processorError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client creates payment intents against a Stripe-compatible HTTP API
type Client struct {
	http     *resty.Client
	currency string
}

// NewClient creates a processor client
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.SecretKey).
		SetHeader("Accept", "application/json")

	return &Client{
		http:     httpClient,
		currency: strings.ToLower(cfg.Currency),
	}
}

// Currency returns the ISO currency every intent is created in
func (c *Client) Currency() string {
	return c.currency
}

// CreateIntent asks the processor for a card payment intent of amount minor units
func (c *Client) CreateIntent(ctx context.Context, amount int64) (*Intent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidationFailed)
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", c.currency)
	form.Add("payment_method_types[]", "card")

	result := &Intent{}
	failure := &processorError{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", uuid.New().String()).
		SetFormDataFromValues(form).
		SetResult(result).
		SetError(failure).
		Post(intentsPath)
	if err != nil {
		logger.Error().Err(err).Int64("amount", amount).Msg("Payment processor request failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExternalService, err)
	}

	if resp.IsError() {
		logger.Error().
			Int("status", resp.StatusCode()).
			Str("type", failure.Error.Type).
			Str("code", failure.Error.Code).
			Msg("Payment processor rejected intent")
		return nil, fmt.Errorf("%w: processor returned %d: %s", apperrors.ErrExternalService, resp.StatusCode(), failure.Error.Message)
	}

	if result.ClientSecret == "" {
		return nil, fmt.Errorf("%w: processor response has no client secret", apperrors.ErrExternalService)
	}

	return result, nil
}
