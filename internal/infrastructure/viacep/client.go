package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"record-manager-api/config"
)

const maxErrorBodySize = 1 << 12 // 4 KB

type Client struct {
	logger  *zap.Logger
	baseURL string
	http    *http.Client
}

func New(logger *zap.Logger, cfg config.CEP) *Client {
	return &Client{
		logger:  logger,
		baseURL: cfg.BaseURL,
		http:    http.DefaultClient,
	}
}

// UpstreamError carries a non-2xx answer from the directory service so the
// transport layer can propagate its status and body to the caller.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("cep lookup upstream returned status %d", e.StatusCode)
}

// Lookup issues a single GET to the directory service and returns its JSON
// payload verbatim. The code is forwarded as received: the upstream itself
// rejects malformed codes, and unknown-but-well-formed codes come back as a
// 200 with an error marker in the body, which is passed through untouched.
func (c *Client) Lookup(ctx context.Context, cep string) (map[string]any, error) {
	reqURL := fmt.Sprintf("%s/%s/json/", c.baseURL, url.PathEscape(cep))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("cep lookup request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cep lookup call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: body}
	}

	var payload map[string]any
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("cep lookup decode: %w", err)
	}

	return payload, nil
}
