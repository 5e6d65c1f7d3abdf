package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-scheduler-api/internal/dto"
	"github.com/noah-isme/course-scheduler-api/internal/models"
	"github.com/noah-isme/course-scheduler-api/internal/service"
	appErrors "github.com/noah-isme/course-scheduler-api/pkg/errors"
	"github.com/noah-isme/course-scheduler-api/pkg/response"
)

const maxSelectedCourses = 64

type scheduleGenerator interface {
	Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error)
}

type scheduleExporter interface {
	RenderCSV(schedule []models.Section) ([]byte, error)
	RenderPDF(schedule []models.Section, title string) ([]byte, error)
}

// ScheduleHandler exposes the timetable generation and export endpoints.
type ScheduleHandler struct {
	service  scheduleGenerator
	exporter scheduleExporter
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(svc *service.ScheduleService, exporter *service.ExportService) *ScheduleHandler {
	return &ScheduleHandler{service: svc, exporter: exporter}
}

// Generate godoc
// @Summary Generate a deterministic, conflict-free timetable
// @Description Places locked courses first, then fills remaining courses honoring constraints extracted from free text. Scheduling failures are reported inside the payload with success=false, not as HTTP errors.
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param payload body dto.GenerateScheduleRequest true "Generate schedule payload"
// @Success 200 {object} response.Envelope
// @Router /schedule/generate [post]
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generate payload"))
		return
	}
	if len(req.SelectedCourses) > maxSelectedCourses {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "selectedCourses exceeds supported limit"))
		return
	}
	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Export godoc
// @Summary Export a generated schedule as CSV or PDF
// @Tags Scheduler
// @Accept json
// @Produce octet-stream
// @Param format query string false "csv (default) or pdf"
// @Param payload body dto.ExportScheduleRequest true "Schedule to export"
// @Success 200 {file} binary
// @Router /schedule/export [post]
func (h *ScheduleHandler) Export(c *gin.Context) {
	var req dto.ExportScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, err := h.exporter.RenderCSV(req.Schedule)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "csv export failed"))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="schedule.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	case "pdf":
		data, err := h.exporter.RenderPDF(req.Schedule, req.Title)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "pdf export failed"))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="schedule.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}
