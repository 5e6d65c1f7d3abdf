package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-scheduler-api/internal/dto"
	"github.com/noah-isme/course-scheduler-api/internal/service"
	appErrors "github.com/noah-isme/course-scheduler-api/pkg/errors"
	"github.com/noah-isme/course-scheduler-api/pkg/response"
)

type explainer interface {
	Explain(ctx context.Context, req dto.ExplainRequest) (string, error)
}

// ExplainHandler exposes the schedule explanation endpoint.
type ExplainHandler struct {
	service explainer
}

// NewExplainHandler constructs the handler.
func NewExplainHandler(svc *service.ExplainService) *ExplainHandler {
	return &ExplainHandler{service: svc}
}

// Explain godoc
// @Summary Generate an advisor-style explanation of a scheduling outcome
// @Tags Explanation
// @Accept json
// @Produce json
// @Param payload body dto.ExplainRequest true "Explain payload"
// @Success 200 {object} response.Envelope
// @Router /llm/explain [post]
func (h *ExplainHandler) Explain(c *gin.Context) {
	var req dto.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid explain payload"))
		return
	}
	text, err := h.service.Explain(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.ExplainResponse{Explanation: text})
}
