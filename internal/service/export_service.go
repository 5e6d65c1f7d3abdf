package service

import (
	"github.com/noah-isme/course-scheduler-api/internal/models"
	"github.com/noah-isme/course-scheduler-api/pkg/export"
)

// ExportService renders generated schedules into downloadable files.
type ExportService struct {
	csv *export.CSVExporter
	pdf *export.PDFExporter
}

// NewExportService constructs the exporter facade.
func NewExportService() *ExportService {
	return &ExportService{
		csv: export.NewCSVExporter(),
		pdf: export.NewPDFExporter(),
	}
}

// RenderCSV produces a CSV rendition of the schedule.
func (s *ExportService) RenderCSV(schedule []models.Section) ([]byte, error) {
	return s.csv.Render(scheduleDataset(schedule))
}

// RenderPDF produces a printable PDF rendition of the schedule.
func (s *ExportService) RenderPDF(schedule []models.Section, title string) ([]byte, error) {
	if title == "" {
		title = "Weekly Timetable"
	}
	return s.pdf.Render(scheduleDataset(schedule), title)
}

func scheduleDataset(schedule []models.Section) export.Dataset {
	headers := []string{"Course", "Day", "Start", "End", "Location"}
	rows := make([]map[string]string, 0, len(schedule))
	for _, section := range schedule {
		rows = append(rows, map[string]string{
			"Course":   section.Course,
			"Day":      string(section.Day),
			"Start":    section.StartTime,
			"End":      section.EndTime,
			"Location": section.Location,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
