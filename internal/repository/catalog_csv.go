package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/noah-isme/course-scheduler-api/internal/models"
)

var catalogColumns = []string{"course", "day", "start_time", "end_time", "location"}

// CSVCatalogRepository loads the section catalog from a headed CSV file.
// Rows are validated eagerly so malformed day names or clock values abort
// the boot instead of surfacing later as silent miscomparisons.
type CSVCatalogRepository struct {
	path string
}

// NewCSVCatalogRepository constructs a CSV-backed catalog loader.
func NewCSVCatalogRepository(path string) *CSVCatalogRepository {
	return &CSVCatalogRepository{path: path}
}

// Load reads the whole file and returns the indexed catalog. Section order
// follows file order, which the engine's first-fit policy relies on.
func (r *CSVCatalogRepository) Load(ctx context.Context) (*models.Catalog, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog csv %s: %w", r.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var sections []models.Section
	for row := 2; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", row, err)
		}

		day, err := models.ParseDay(record[columns["day"]])
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", row, err)
		}
		section, err := models.NewSection(
			strings.TrimSpace(record[columns["course"]]),
			day,
			strings.TrimSpace(record[columns["start_time"]]),
			strings.TrimSpace(record[columns["end_time"]]),
			strings.TrimSpace(record[columns["location"]]),
		)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", row, err)
		}
		sections = append(sections, section)
	}

	return models.NewCatalog(sections), nil
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range catalogColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("catalog csv missing column %q", required)
		}
	}
	return columns, nil
}
