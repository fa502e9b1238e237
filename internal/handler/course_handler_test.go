package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minglu-edu/schedule-proxy/internal/dto"
	"github.com/minglu-edu/schedule-proxy/internal/notion"
)

type courseServiceMock struct {
	courses []dto.CourseRecord
	err     error
}

func (m *courseServiceMock) ListCourses(ctx context.Context) ([]dto.CourseRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.courses, nil
}

func performList(t *testing.T, svc courseService) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewCourseHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/api/courses", nil)
	require.NoError(t, err)
	c.Request = req
	h.List(c)
	return w
}

func TestCourseHandlerListSuccess(t *testing.T) {
	w := performList(t, &courseServiceMock{courses: []dto.CourseRecord{{Name: "篮球训练", Teacher: "王教练"}}})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK   bool               `json:"ok"`
		Data []dto.CourseRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "篮球训练", body.Data[0].Name)
}

func TestCourseHandlerListUpstreamPassthrough(t *testing.T) {
	upstream := &notion.UpstreamError{
		StatusCode: http.StatusUnauthorized,
		Body:       []byte(`{"code":"unauthorized"}`),
	}
	w := performList(t, &courseServiceMock{err: upstream})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body struct {
		OK     bool        `json:"ok"`
		Error  string      `json:"error"`
		Detail interface{} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.Equal(t, "代理请求失败(401)", body.Error)

	detail, ok := body.Detail.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "unauthorized", detail["code"])
}

func TestCourseHandlerListGenericFailure(t *testing.T) {
	w := performList(t, &courseServiceMock{err: errors.New("connection refused")})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		OK     bool   `json:"ok"`
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.Equal(t, "代理请求失败(500)", body.Error)
	assert.Contains(t, body.Detail, "connection refused")
}
