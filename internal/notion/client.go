package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/minglu-edu/schedule-proxy/pkg/config"
	appErrors "github.com/minglu-edu/schedule-proxy/pkg/errors"
)

// UpstreamError preserves the workspace API status code and payload so
// the proxy can pass both through to its caller unchanged.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("notion query failed with status %d", e.StatusCode)
}

// Detail returns the upstream payload as decoded JSON when possible,
// falling back to the raw body string.
func (e *UpstreamError) Detail() interface{} {
	if len(e.Body) == 0 {
		return nil
	}
	var decoded interface{}
	if err := json.Unmarshal(e.Body, &decoded); err == nil {
		return decoded
	}
	return string(e.Body)
}

// Client issues database queries against the workspace API.
type Client struct {
	httpClient *http.Client
	cfg        config.NotionConfig
	logger     *zap.Logger
}

// NewClient builds a workspace API client.
func NewClient(cfg config.NotionConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
		logger:     logger,
	}
}

// QueryDatabase fetches one page of database rows sorted ascending by
// the configured date property. Pagination beyond the first page is a
// known limitation; the page size covers the visible two-week window.
func (c *Client) QueryDatabase(ctx context.Context) ([]Page, error) {
	body, err := json.Marshal(queryRequest{
		PageSize: c.cfg.PageSize,
		Sorts: []sortSpec{
			{Property: c.cfg.DateProperty, Direction: "ascending"},
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/databases/%s/query", c.cfg.BaseURL, c.cfg.DatabaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Notion-Version", c.cfg.Version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("notion query rejected",
			zap.Int("status", resp.StatusCode),
			zap.Int("body_bytes", len(payload)),
		)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: payload}
	}

	var decoded queryResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "decode notion response failed")
	}

	c.logger.Info("notion query ok", zap.Int("results", len(decoded.Results)))
	return decoded.Results, nil
}
