package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// KeyHeader carries the Press Sync key on every request.
const KeyHeader = "X-Press-Sync-Key"

// Client fetches decoded data for a named resource from the destination.
// It has no built-in retry; cancellation and deadlines come from ctx.
type Client interface {
	// GetRemoteData requests path with params and decodes the JSON body into out.
	GetRemoteData(ctx context.Context, path string, params Params, out any) error
}

// NewClient creates an HTTP client for the configured destination.
func NewClient(cfg Config, logger *zap.Logger) (Client, error) {
	if cfg.Domain == "" {
		return nil, fmt.Errorf("remote domain is not configured")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	scheme := "https://"
	if !cfg.UseSSL {
		scheme = "http://"
	}
	domain := strings.TrimPrefix(cfg.Domain, "http://")
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimSuffix(domain, "/")

	base := "/" + strings.Trim(cfg.BasePath, "/")
	if base == "/" {
		base = ""
	}

	return &httpClient{
		baseURL: scheme + domain + base,
		key:     cfg.Key,
		logger:  logger,
	}, nil
}

type httpClient struct {
	baseURL string
	key     string
	logger  *zap.Logger
}

// URL returns the full request URL for path and params.
func (c *httpClient) URL(path string, params Params) string {
	u := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if q := params.Values().Encode(); q != "" {
		u += "?" + q
	}
	return u
}

func (c *httpClient) GetRemoteData(ctx context.Context, path string, params Params, out any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRemoteUnavailable, path, err)
	}

	agent := fiber.Get(c.URL(path, params))
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.key != "" {
		agent.Set(KeyHeader, c.key)
	}
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	}

	c.logger.Debug("Requesting remote data",
		zap.String("path", path),
		zap.String("type", string(params.Type)),
		zap.Int("ids", len(params.IDs)),
	)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s: %v", ErrRemoteUnavailable, path, errs[0])
	}
	if code < 200 || code > 299 {
		return fmt.Errorf("%w: %s: status %d: %s", ErrRemoteUnavailable, path, code, snippet(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRemoteDecode, path, err)
	}
	return nil
}

func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
