package backend

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

	"orderconsole/internal/credential"
	"orderconsole/internal/domain/model"
	"orderconsole/internal/infra/metrics"
	"orderconsole/internal/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const genericFailure = "backend request failed"

// Client talks to the order backend over HTTP/JSON. Every call forwards the bearer
// token found in the request context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validator
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func NewClient(baseURL string, timeout time.Duration, v *validator.Validator, logger *zap.Logger, m *metrics.Metrics) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if v == nil {
		v = validator.New()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		validate:   v,
		logger:     logger,
		metrics:    m,
	}
}

// envelope is the backend's response wrapper. Success is only sent by refund endpoints.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

type callOpts struct {
	// provider marks endpoints that proxy a payment provider
	provider bool
}

func (c *Client) do(ctx context.Context, op, method, path string, body any, out any, opts callOpts) error {
	token, ok := credential.Token(ctx)
	if !ok {
		return fmt.Errorf("%s: %w", op, model.ErrUnauthenticated)
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveBackend(op, 0, time.Since(start))
		c.logger.Warn("backend request failed", zap.String("op", op), zap.String("path", path), zap.Error(err))
		return &model.TransportError{Op: op, Message: "backend unreachable", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	c.metrics.ObserveBackend(op, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &model.TransportError{Op: op, StatusCode: resp.StatusCode, Message: "read response", Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", op, model.ErrUnauthenticated)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	case opts.provider && (resp.StatusCode == http.StatusBadGateway || resp.StatusCode == http.StatusFailedDependency):
		return &model.ProviderError{Op: op, Message: messageOr(env.Message, "payment provider failed")}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Warn("backend returned error",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.String("message", env.Message),
		)
		return &model.TransportError{Op: op, StatusCode: resp.StatusCode, Message: messageOr(env.Message, genericFailure)}
	}

	if decodeErr != nil {
		return &model.ValidationError{Field: op, Message: "backend response is not valid JSON"}
	}
	if opts.provider && env.Success != nil && !*env.Success {
		return &model.ProviderError{Op: op, Message: messageOr(env.Message, "payment provider failed")}
	}
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &model.ValidationError{Field: op, Message: "backend response has no data"}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &model.ValidationError{Field: op, Message: "backend response does not match schema: " + err.Error()}
	}
	return nil
}

// check runs the schema validator on a decoded payload.
func (c *Client) check(op string, v any) error {
	if err := c.validate.Struct(v); err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			c.logger.Error("backend payload failed validation", zap.String("op", op), zap.String("field", ve.Field))
		}
		return err
	}
	return nil
}

func messageOr(msg, fallback string) string {
	if strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
