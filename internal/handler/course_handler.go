package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/minglu-edu/schedule-proxy/internal/dto"
	"github.com/minglu-edu/schedule-proxy/internal/notion"
	appErrors "github.com/minglu-edu/schedule-proxy/pkg/errors"
	"github.com/minglu-edu/schedule-proxy/pkg/response"
)

type courseService interface {
	ListCourses(ctx context.Context) ([]dto.CourseRecord, error)
}

// CourseHandler exposes the normalized course list.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler builds a new handler.
func NewCourseHandler(service courseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// List godoc
// @Summary List scheduled courses
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		var status int
		var detail interface{}

		var upstream *notion.UpstreamError
		if errors.As(err, &upstream) {
			status = upstream.StatusCode
			detail = upstream.Detail()
		} else {
			appErr := appErrors.FromError(err)
			status = appErr.Status
			detail = appErr.Error()
		}

		response.Fail(c, status, fmt.Sprintf("代理请求失败(%d)", status), detail)
		return
	}

	response.OK(c, courses)
}
