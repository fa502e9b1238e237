package notion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minglu-edu/schedule-proxy/pkg/config"
	appErrors "github.com/minglu-edu/schedule-proxy/pkg/errors"
)

func testNotionConfig(baseURL string) config.NotionConfig {
	return config.NotionConfig{
		Token:        "secret-token",
		DatabaseID:   "db-123",
		BaseURL:      baseURL,
		Version:      "2022-06-28",
		DateProperty: "日期",
		PageSize:     50,
	}
}

func TestQueryDatabaseSendsExpectedRequest(t *testing.T) {
	var gotPath, gotAuth, gotVersion string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":"page-1","properties":{}}]}`))
	}))
	defer server.Close()

	client := NewClient(testNotionConfig(server.URL), nil)
	pages, err := client.QueryDatabase(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "page-1", pages[0].ID)

	assert.Equal(t, "/databases/db-123/query", gotPath)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "2022-06-28", gotVersion)
	assert.Equal(t, float64(50), gotBody["page_size"])

	sorts, ok := gotBody["sorts"].([]interface{})
	require.True(t, ok)
	require.Len(t, sorts, 1)
	sort := sorts[0].(map[string]interface{})
	assert.Equal(t, "日期", sort["property"])
	assert.Equal(t, "ascending", sort["direction"])
}

func TestQueryDatabaseUpstreamErrorPreservesStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized","message":"API token is invalid."}`))
	}))
	defer server.Close()

	client := NewClient(testNotionConfig(server.URL), nil)
	_, err := client.QueryDatabase(context.Background())
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)

	detail, ok := upstream.Detail().(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "unauthorized", detail["code"])
}

func TestQueryDatabaseDecodeFailureIsUpstreamTyped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(testNotionConfig(server.URL), nil)
	_, err := client.QueryDatabase(context.Background())
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
}

func TestUpstreamErrorDetailFallsBackToRawBody(t *testing.T) {
	err := &UpstreamError{StatusCode: http.StatusBadGateway, Body: []byte("upstream exploded")}
	assert.Equal(t, "upstream exploded", err.Detail())
	assert.Nil(t, (&UpstreamError{StatusCode: 500}).Detail())
}
