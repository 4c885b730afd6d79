// Package webhook delivers submitted leads to the sales webhook.
// Supports a raw JSON target and Slack incoming webhooks.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"premium-quote/core/lead"
	"premium-quote/internal/config"
	qerrors "premium-quote/internal/errors"
	"premium-quote/internal/logging"
)

// Provider is a webhook provider type
type Provider string

const (
	ProviderCustom Provider = "custom"
	ProviderSlack  Provider = "slack"
)

// SignatureHeader carries the hex HMAC-SHA256 of the body when a secret is set
const SignatureHeader = "X-Signature"

// Config configures webhook behavior
type Config struct {
	// Provider type
	Provider Provider `json:"provider"`

	// Endpoint URL
	Endpoint string `json:"endpoint"`

	// Secret for the body signature
	Secret string `json:"secret"`

	// Headers to include
	Headers map[string]string `json:"headers"`

	// Timeout for one attempt
	Timeout time.Duration `json:"timeout"`

	// RetryCount is the number of extra attempts after a failure
	RetryCount int `json:"retry_count"`

	// RetryDelay between attempts
	RetryDelay time.Duration `json:"retry_delay"`
}

// DefaultConfig returns the submission defaults: one attempt, the user retries by hand
func DefaultConfig(provider Provider) *Config {
	return &Config{
		Provider:   provider,
		Timeout:    15 * time.Second,
		RetryCount: 0,
		RetryDelay: time.Second,
		Headers:    make(map[string]string),
	}
}

// FromAppConfig converts the application webhook section
func FromAppConfig(c config.WebhookConfig) *Config {
	cfg := DefaultConfig(Provider(c.Provider))
	if cfg.Provider == "" {
		cfg.Provider = ProviderCustom
	}
	cfg.Endpoint = c.Endpoint
	cfg.Secret = c.Secret
	for k, v := range c.Headers {
		cfg.Headers[k] = v
	}
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	cfg.RetryCount = c.RetryCount
	if c.RetryDelay > 0 {
		cfg.RetryDelay = c.RetryDelay
	}
	return cfg
}

// Delivery reports a successful submission
type Delivery struct {
	LeadID     string `json:"leadId"`
	StatusCode int    `json:"statusCode"`
	Attempts   int    `json:"attempts"`
}

// Adapter is the webhook adapter
type Adapter struct {
	config *Config
	client *fasthttp.Client
	logger *zap.Logger
}

// New creates a new webhook adapter
func New(config *Config) *Adapter {
	return &Adapter{
		config: config,
		client: &fasthttp.Client{
			Name:         "premium-quote",
			ReadTimeout:  config.Timeout,
			WriteTimeout: config.Timeout,
		},
		logger: logging.Named("webhook"),
	}
}

// Send posts the lead. A non-2xx answer or a transport error is a
// NETWORK_ERROR once every attempt has failed.
func (a *Adapter) Send(ctx context.Context, l *lead.Lead) (*Delivery, error) {
	if a.config.Endpoint == "" {
		return nil, qerrors.Config("webhook endpoint is not configured", nil)
	}

	body, err := a.formatPayload(l)
	if err != nil {
		return nil, qerrors.Internal("failed to format payload", err)
	}

	var lastErr error
	for attempt := 0; attempt <= a.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, qerrors.Network("submission cancelled", ctx.Err())
			case <-time.After(a.config.RetryDelay):
			}
		}

		status, err := a.sendOnce(ctx, body)
		if ctx.Err() != nil {
			return nil, qerrors.Network("submission cancelled", ctx.Err())
		}
		if err != nil {
			lastErr = err
			a.logger.Warn("lead submission attempt failed",
				zap.String("lead", l.ID.String()),
				zap.Int("attempt", attempt+1),
				zap.Error(err))
			continue
		}

		a.logger.Info("lead submitted",
			zap.String("lead", l.ID.String()),
			zap.Int("status", status),
			zap.Int("attempts", attempt+1))
		return &Delivery{LeadID: l.ID.String(), StatusCode: status, Attempts: attempt + 1}, nil
	}

	return nil, qerrors.Wrapf(qerrors.TypeNetwork, lastErr, "webhook failed after %d attempts", a.config.RetryCount+1).
		WithContext("endpoint", a.config.Endpoint).
		WithContext("lead", l.ID.String())
}

type outcome struct {
	status int
	err    error
}

// sendOnce performs one POST. The round trip runs on its own goroutine,
// which owns the pooled request and response, so a cancelled ctx returns
// at once instead of waiting out the deadline.
func (a *Adapter) sendOnce(ctx context.Context, body []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	deadline := time.Now().Add(a.config.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	done := make(chan outcome, 1)
	go func() {
		done <- a.do(body, deadline)
	}()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case o := <-done:
		return o.status, o.err
	}
}

func (a *Adapter) do(body []byte, deadline time.Time) outcome {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(a.config.Endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	for k, v := range a.config.Headers {
		req.Header.Set(k, v)
	}
	if a.config.Secret != "" {
		req.Header.Set(SignatureHeader, Sign(body, a.config.Secret))
	}
	req.SetBody(body)

	if err := a.client.DoDeadline(req, resp, deadline); err != nil {
		return outcome{err: fmt.Errorf("request failed: %w", err)}
	}

	status := resp.StatusCode()
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return outcome{status: status, err: fmt.Errorf("webhook returned %d: %s", status, truncate(resp.Body(), 200))}
	}
	return outcome{status: status}
}

func (a *Adapter) formatPayload(l *lead.Lead) ([]byte, error) {
	switch a.config.Provider {
	case ProviderSlack:
		return a.formatSlack(l)
	default:
		return json.Marshal(l)
	}
}

func (a *Adapter) formatSlack(l *lead.Lead) ([]byte, error) {
	year := "-"
	if registered, ok := l.RegistrationDate(); ok {
		year = fmt.Sprintf("%d", registered.Year())
	}

	slack := map[string]interface{}{
		"text": fmt.Sprintf("New quote request from %s %s", l.FirstName, l.LastName),
		"attachments": []map[string]interface{}{
			{
				"color": "good",
				"title": fmt.Sprintf("Estimate: %s/year", l.EstimatedPremium.Annual.StringFixed(2)),
				"fields": []map[string]interface{}{
					{"title": "Vehicle", "value": fmt.Sprintf("%s %s (%s, %s)", l.Brand, l.Model, l.VehicleType, year), "short": true},
					{"title": "Status", "value": string(l.UserStatus), "short": true},
					{"title": "Email", "value": l.Email, "short": true},
					{"title": "Contract", "value": string(l.ContractType), "short": true},
				},
				"footer": "lead " + l.ID.String(),
				"ts":     l.SubmittedAt.Unix(),
			},
		},
	}

	return json.Marshal(slack)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// Sign returns the hex HMAC-SHA256 of payload
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature verifies an incoming webhook signature
func VerifySignature(payload []byte, signature, secret string) bool {
	return hmac.Equal([]byte(signature), []byte(Sign(payload, secret)))
}
