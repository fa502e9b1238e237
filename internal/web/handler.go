package web

import (
	"context"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/minglu-edu/schedule-proxy/internal/dto"
	"github.com/minglu-edu/schedule-proxy/internal/schedule"
)

const genericLoadError = "加载课程数据失败，请稍后重试或联系管理员"

type courseFetcher interface {
	FetchCourses(ctx context.Context) ([]dto.CourseRecord, error)
}

// Handler serves the rendered schedule page.
type Handler struct {
	store   *schedule.Store
	fetcher courseFetcher
	swapper *Swapper
	tmpl    *template.Template
	logger  *zap.Logger
	now     func() time.Time

	mu         sync.Mutex
	activeWeek string
	lastError  string
	loading    bool
}

// NewHandler wires the schedule page handler.
func NewHandler(store *schedule.Store, fetcher courseFetcher, swapper *Swapper, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:      store,
		fetcher:    fetcher,
		swapper:    swapper,
		tmpl:       template.Must(template.New("schedule").Parse(pageTemplate)),
		logger:     logger,
		now:        time.Now,
		activeWeek: WeekCurrent,
	}
}

// Register mounts the page routes.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.Schedule)
	r.POST("/reload", h.Reload)
}

// Load fetches the full course list and replaces the store wholesale.
// The loading flag is cleared on every exit path; a failed fetch leaves
// the previous view errored, never a stale-but-usable one.
func (h *Handler) Load(ctx context.Context) error {
	h.setLoading(true)
	defer h.setLoading(false)

	courses, err := h.fetcher.FetchCourses(ctx)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = genericLoadError
		}
		h.setError(msg)
		h.store.ReplaceAll(nil)
		h.logger.Error("course load failed", zap.Error(err))
		return err
	}

	h.setError("")
	h.store.ReplaceAll(courses)
	h.logger.Info("course list replaced", zap.Int("count", len(courses)))
	return nil
}

// Schedule godoc renders the week view selected via ?week=current|next.
func (h *Handler) Schedule(c *gin.Context) {
	week := c.DefaultQuery("week", "")
	if week != WeekCurrent && week != WeekNext {
		week = ""
	}

	h.mu.Lock()
	if week == "" {
		week = h.activeWeek
	} else if week != h.activeWeek {
		target := week
		h.mu.Unlock()
		h.swapper.Request(func() { h.setActiveWeek(target) })
		h.mu.Lock()
	}
	errMsg := h.lastError
	loading := h.loading
	h.mu.Unlock()

	page := BuildPage(h.store.Snapshot(), week, h.now())
	page.FadeClass = h.swapper.FadeClass()
	page.ErrorMessage = errMsg
	page.Loading = loading

	h.render(c, page)
}

// Reload refetches from the proxy and redirects back to the page.
func (h *Handler) Reload(c *gin.Context) {
	//nolint:errcheck // failure is surfaced through the error banner
	_ = h.Load(c.Request.Context())
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) render(c *gin.Context, page Page) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.tmpl.Execute(c.Writer, page); err != nil {
		h.logger.Error("template render failed", zap.Error(err))
	}
}

func (h *Handler) setActiveWeek(week string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.activeWeek = week
}

func (h *Handler) setError(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastError = msg
}

func (h *Handler) setLoading(loading bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loading = loading
}
