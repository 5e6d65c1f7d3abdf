package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-scheduler-api/internal/models"
)

func catalogFixture(t *testing.T) *models.Catalog {
	t.Helper()
	s1, err := models.NewSection("CS101", models.DayMon, "09:00", "10:30", "Room 1")
	require.NoError(t, err)
	s2, err := models.NewSection("MATH200", models.DayTue, "11:00", "12:30", "Hall A")
	require.NoError(t, err)
	return models.NewCatalog([]models.Section{s1, s2})
}

func getRequest(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestCatalogCourses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(catalogFixture(t))

	c, w := getRequest(t, "/catalog/courses")
	handler.Courses(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "CS101")
	require.Contains(t, w.Body.String(), "MATH200")
}

func TestCatalogSections(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(catalogFixture(t))

	c, w := getRequest(t, "/catalog/sections?course=CS101")
	handler.Sections(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "09:00")
}

func TestCatalogSectionsMissingParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(catalogFixture(t))

	c, w := getRequest(t, "/catalog/sections")
	handler.Sections(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogSectionsUnknownCourse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(catalogFixture(t))

	c, w := getRequest(t, "/catalog/sections?course=GHOST1")
	handler.Sections(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}
