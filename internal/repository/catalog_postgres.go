package repository

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-scheduler-api/internal/models"
)

var validTableName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type sectionRow struct {
	Course    string `db:"course"`
	Day       string `db:"day"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	Location  string `db:"location"`
}

// PostgresCatalogRepository loads the section catalog from a database table.
// The ORDER BY id clause pins iteration order: first-fit selection must see
// the same candidate order on every boot.
type PostgresCatalogRepository struct {
	db    *sqlx.DB
	table string
}

// NewPostgresCatalogRepository constructs a Postgres-backed catalog loader.
func NewPostgresCatalogRepository(db *sqlx.DB, table string) (*PostgresCatalogRepository, error) {
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("invalid catalog table name %q", table)
	}
	return &PostgresCatalogRepository{db: db, table: table}, nil
}

// Load fetches and validates every section row.
func (r *PostgresCatalogRepository) Load(ctx context.Context) (*models.Catalog, error) {
	query := fmt.Sprintf("SELECT course, day, start_time, end_time, location FROM %s ORDER BY id", r.table)

	var rows []sectionRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("query catalog table %s: %w", r.table, err)
	}

	sections := make([]models.Section, 0, len(rows))
	for i, row := range rows {
		day, err := models.ParseDay(row.Day)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", i+1, err)
		}
		section, err := models.NewSection(row.Course, day, row.StartTime, row.EndTime, row.Location)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", i+1, err)
		}
		sections = append(sections, section)
	}

	return models.NewCatalog(sections), nil
}
