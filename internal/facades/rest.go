package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
)

const (
	defaultTimeout     = 15 * time.Second
	defaultMaxAttempts = 3
	maxErrorBodyLength = 512
)

// ClientConfig configures a gateway client.
type ClientConfig struct {
	BaseURL     string
	SecretKey   string
	Timeout     time.Duration // Per attempt
	MaxAttempts int
	Backoff     BackoffPolicy
	HTTPClient  *http.Client // Overrides Timeout when set
}

// restClient is the retrying JSON transport shared by all gateways. It is the
// only place gateway errors are classified.
type restClient struct {
	gateway     models.Gateway
	baseURL     string
	secretKey   string
	httpClient  *http.Client
	backoff     BackoffPolicy
	maxAttempts int
	sleep       func(ctx context.Context, d time.Duration) error
}

func newRestClient(gateway models.Gateway, cfg ClientConfig) *restClient {
	c := &restClient{
		gateway:     gateway,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:   cfg.SecretKey,
		httpClient:  cfg.HTTPClient,
		backoff:     cfg.Backoff,
		maxAttempts: cfg.MaxAttempts,
		sleep:       sleepContext,
	}
	if c.httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}
	if c.backoff == nil {
		c.backoff = DefaultBackoff
	}
	if c.maxAttempts <= 0 {
		c.maxAttempts = defaultMaxAttempts
	}
	return c
}

// do sends one logical request, retrying transient failures. On success the
// 2xx body is decoded into out.
func (c *restClient) do(ctx context.Context, operation, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("%s %s: encode request: %w", c.gateway, operation, err)
		}
	}

	// One key per logical call, reused by every retry.
	requestID := uuid.NewString()

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		status, respBody, err := c.send(ctx, operation, method, path, payload, requestID)

		switch {
		case err == nil && status >= 200 && status < 300:
			gatewayRequests.WithLabelValues(string(c.gateway), operation, "success").Inc()
			if out == nil {
				return nil
			}
			if err := json.Unmarshal(respBody, out); err != nil {
				// The call went through; its outcome is unknown to us.
				return &models.GatewayTransientError{Gateway: c.gateway, Operation: operation, Attempts: attempt,
					Err: fmt.Errorf("decode response: %w", err)}
			}
			return nil

		case err == nil && status >= 400 && status < 500:
			gatewayRequests.WithLabelValues(string(c.gateway), operation, "client_error").Inc()
			clientErr := &models.GatewayClientError{
				Gateway:    c.gateway,
				Operation:  operation,
				StatusCode: status,
				Message:    errorMessage(respBody),
			}
			logger.Log.Warnw("gateway rejected request",
				"gateway", c.gateway, "operation", operation, "request_id", requestID,
				"status", status, "message", clientErr.Message)
			return clientErr

		case err == nil:
			gatewayRequests.WithLabelValues(string(c.gateway), operation, "server_error").Inc()
			lastErr = fmt.Errorf("server error %d: %s", status, errorMessage(respBody))

		default:
			gatewayRequests.WithLabelValues(string(c.gateway), operation, "transport_error").Inc()
			lastErr = err
		}

		logger.Log.Warnw("gateway call failed",
			"gateway", c.gateway, "operation", operation, "request_id", requestID,
			"attempt", attempt, "max_attempts", c.maxAttempts, "error", lastErr)

		if ctx.Err() != nil {
			return &models.GatewayTransientError{Gateway: c.gateway, Operation: operation, Attempts: attempt, Err: ctx.Err()}
		}
		if attempt == c.maxAttempts {
			break
		}
		gatewayRetries.WithLabelValues(string(c.gateway), operation).Inc()
		if err := c.sleep(ctx, c.backoff.NextDelay(attempt)); err != nil {
			return &models.GatewayTransientError{Gateway: c.gateway, Operation: operation, Attempts: attempt, Err: err}
		}
	}

	return &models.GatewayTransientError{Gateway: c.gateway, Operation: operation, Attempts: c.maxAttempts, Err: lastErr}
}

// send performs a single HTTP attempt.
func (c *restClient) send(ctx context.Context, operation, method, path string, payload []byte, requestID string) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Idempotency-Key", requestID)
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	gatewayRequestDuration.WithLabelValues(string(c.gateway), operation).Observe(time.Since(start).Seconds())
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	logger.Log.Debugw("gateway response",
		"gateway", c.gateway, "operation", operation, "request_id", requestID,
		"method", method, "path", path, "status", resp.StatusCode,
		"duration", time.Since(start))

	return resp.StatusCode, body, nil
}

// errorMessage extracts the provider "message" field, falling back to the raw body.
func errorMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBodyLength {
		msg = msg[:maxErrorBodyLength]
	}
	return msg
}
