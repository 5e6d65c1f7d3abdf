package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-scheduler-api/internal/dto"
	appErrors "github.com/noah-isme/course-scheduler-api/pkg/errors"
)

type explainerMock struct {
	captured dto.ExplainRequest
	text     string
	err      error
}

func (m *explainerMock) Explain(ctx context.Context, req dto.ExplainRequest) (string, error) {
	m.captured = req
	return m.text, m.err
}

func TestExplainSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &explainerMock{text: "Your Friday lab was the only option."}
	handler := &ExplainHandler{service: mockSvc}

	c, w := postJSON(t, "/llm/explain", `{"userMessage":"why friday","fail_reason":"","schedule":[]}`)
	handler.Explain(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "why friday", mockSvc.captured.UserMessage)

	var envelope struct {
		Data dto.ExplainResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "Your Friday lab was the only option.", envelope.Data.Explanation)
}

func TestExplainRequiresUserMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &ExplainHandler{service: &explainerMock{}}

	c, w := postJSON(t, "/llm/explain", `{"schedule":[]}`)
	handler.Explain(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExplainUpstreamFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &ExplainHandler{service: &explainerMock{err: appErrors.Clone(appErrors.ErrUpstream, "explanation generation failed")}}

	c, w := postJSON(t, "/llm/explain", `{"userMessage":"hi"}`)
	handler.Explain(c)

	require.Equal(t, http.StatusBadGateway, w.Code)
}
