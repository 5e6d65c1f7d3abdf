package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-scheduler-api/internal/models"
)

func TestRenderCSV(t *testing.T) {
	svc := NewExportService()
	section, err := models.NewSection("CS101", models.DayMon, "09:00", "10:30", "Room 1")
	require.NoError(t, err)

	data, err := svc.RenderCSV([]models.Section{section})
	require.NoError(t, err)

	want := "Course,Day,Start,End,Location\nCS101,Mon,09:00,10:30,Room 1\n"
	require.Equal(t, want, string(data))
}

func TestRenderCSVEmptySchedule(t *testing.T) {
	svc := NewExportService()

	data, err := svc.RenderCSV(nil)
	require.NoError(t, err)
	require.Equal(t, "Course,Day,Start,End,Location\n", string(data))
}

func TestRenderPDF(t *testing.T) {
	svc := NewExportService()
	section, err := models.NewSection("CS101", models.DayMon, "09:00", "10:30", "Room 1")
	require.NoError(t, err)

	data, err := svc.RenderPDF([]models.Section{section}, "")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")), "expected a PDF document")
}
