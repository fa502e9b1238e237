package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minglu-edu/schedule-proxy/internal/dto"
	"github.com/minglu-edu/schedule-proxy/internal/schedule"
)

type fetcherStub struct {
	courses []dto.CourseRecord
	err     error
	calls   int
}

func (f *fetcherStub) FetchCourses(ctx context.Context) ([]dto.CourseRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.courses, nil
}

func newTestHandler(fetcher courseFetcher) (*Handler, *fakeTimer) {
	timer := &fakeTimer{}
	h := NewHandler(schedule.NewStore(), fetcher, NewSwapper(150*time.Millisecond, timer), nil)
	h.now = func() time.Time { return wednesday }
	return h, timer
}

func performGet(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.Register(r)
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)
	return w
}

func TestScheduleRendersEmptyPlaceholder(t *testing.T) {
	h, _ := newTestHandler(&fetcherStub{})
	require.NoError(t, h.Load(context.Background()))

	w := performGet(t, h, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "本周暂无课程")
	assert.NotContains(t, body, "class-card")
}

func TestScheduleRendersCards(t *testing.T) {
	h, _ := newTestHandler(&fetcherStub{courses: []dto.CourseRecord{{
		Name:      "篮球训练",
		DateStart: strPtr("2026-03-18T10:00:00"),
		Teacher:   "王教练",
		Clazz:     "一班",
		Status:    "进行中",
	}}})
	require.NoError(t, h.Load(context.Background()))

	body := performGet(t, h, "/").Body.String()
	assert.Contains(t, body, "篮球训练")
	assert.Contains(t, body, "王教练")
	assert.Contains(t, body, "status-ongoing")
	assert.Contains(t, body, "本周（1节课）")
}

func TestScheduleWeekToggleRunsTransition(t *testing.T) {
	h, timer := newTestHandler(&fetcherStub{})
	require.NoError(t, h.Load(context.Background()))

	body := performGet(t, h, "/?week=next").Body.String()
	assert.Contains(t, body, "下周课表")
	assert.Contains(t, body, "is-fading")

	timer.fire()
	timer.fire()

	h.mu.Lock()
	active := h.activeWeek
	h.mu.Unlock()
	assert.Equal(t, WeekNext, active)

	body = performGet(t, h, "/").Body.String()
	assert.Contains(t, body, "下周课表")
	assert.NotContains(t, body, `class="schedule is-fading"`)
}

func TestLoadFailureSurfacesErrorBanner(t *testing.T) {
	h, _ := newTestHandler(&fetcherStub{err: errors.New("代理接口错误(502): bad gateway")})
	require.Error(t, h.Load(context.Background()))

	body := performGet(t, h, "/").Body.String()
	assert.Contains(t, body, "代理接口错误(502)")
	assert.Contains(t, body, "本周暂无课程")
}

func TestLoadClearsErrorOnRecovery(t *testing.T) {
	fetcher := &fetcherStub{err: errors.New("boom")}
	h, _ := newTestHandler(fetcher)
	require.Error(t, h.Load(context.Background()))

	fetcher.err = nil
	fetcher.courses = []dto.CourseRecord{{Name: "恢复", DateStart: strPtr("2026-03-18T10:00:00")}}
	require.NoError(t, h.Load(context.Background()))

	body := performGet(t, h, "/").Body.String()
	assert.NotContains(t, body, "boom")
	assert.Contains(t, body, "恢复")
}

func TestLoadAlwaysClearsLoadingFlag(t *testing.T) {
	fetcher := &fetcherStub{err: errors.New("boom")}
	h, _ := newTestHandler(fetcher)

	_ = h.Load(context.Background())
	h.mu.Lock()
	loading := h.loading
	h.mu.Unlock()
	assert.False(t, loading)

	fetcher.err = nil
	require.NoError(t, h.Load(context.Background()))
	h.mu.Lock()
	loading = h.loading
	h.mu.Unlock()
	assert.False(t, loading)
}

func TestReloadReplacesStoreWholesale(t *testing.T) {
	fetcher := &fetcherStub{courses: []dto.CourseRecord{{Name: "旧数据", DateStart: strPtr("2026-03-18T10:00:00")}}}
	h, _ := newTestHandler(fetcher)
	require.NoError(t, h.Load(context.Background()))

	fetcher.courses = []dto.CourseRecord{{Name: "新数据", DateStart: strPtr("2026-03-19T10:00:00")}}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.Register(r)
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/reload", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 2, fetcher.calls)

	body := performGet(t, h, "/").Body.String()
	assert.Contains(t, body, "新数据")
	assert.NotContains(t, body, "旧数据")
}
