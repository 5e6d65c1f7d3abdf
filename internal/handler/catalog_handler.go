package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/course-scheduler-api/pkg/errors"
	"github.com/noah-isme/course-scheduler-api/pkg/response"
)

// CatalogHandler serves read-only views of the loaded section catalog.
type CatalogHandler struct {
	catalog *models.Catalog
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(catalog *models.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Courses godoc
// @Summary List distinct course identifiers
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog/courses [get]
func (h *CatalogHandler) Courses(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"courses": h.catalog.Courses()})
}

// Sections godoc
// @Summary List sections for one course
// @Tags Catalog
// @Produce json
// @Param course query string true "Course identifier"
// @Success 200 {object} response.Envelope
// @Router /catalog/sections [get]
func (h *CatalogHandler) Sections(c *gin.Context) {
	course := c.Query("course")
	if course == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "course query parameter is required"))
		return
	}
	sections := h.catalog.SectionsFor(course)
	if len(sections) == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "course not found in catalog"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"course": course, "sections": sections})
}
