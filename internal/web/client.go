package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/minglu-edu/schedule-proxy/internal/dto"
)

const genericFetchError = "接口返回失败"

// Fetcher retrieves the full course list from the proxy service.
type Fetcher struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewFetcher builds a fetcher against the proxy base URL.
func NewFetcher(baseURL string, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

type coursesEnvelope struct {
	OK    bool               `json:"ok"`
	Data  []dto.CourseRecord `json:"data"`
	Error string             `json:"error"`
}

// FetchCourses performs one GET against the proxy. A non-2xx response
// or an ok=false envelope becomes an error carrying the proxy's message.
func (f *Fetcher) FetchCourses(ctx context.Context) ([]dto.CourseRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/api/courses", nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("代理接口错误(%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope coursesEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode courses response: %w", err)
	}
	if !envelope.OK {
		msg := envelope.Error
		if msg == "" {
			msg = genericFetchError
		}
		return nil, errors.New(msg)
	}

	f.logger.Info("courses fetched", zap.Int("count", len(envelope.Data)))
	return envelope.Data, nil
}
