package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-scheduler-api/internal/models"
)

func newCatalogMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestPostgresCatalogLoad(t *testing.T) {
	db, mock, cleanup := newCatalogMock(t)
	defer cleanup()

	repo, err := NewPostgresCatalogRepository(db, "sections")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"course", "day", "start_time", "end_time", "location"}).
		AddRow("CS101", "Mon", "09:00", "10:30", "Room 1").
		AddRow("CS101", "Wed", "14:00", "15:30", "Room 2").
		AddRow("MATH200", "Tue", "11:00", "12:30", "Hall A")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT course, day, start_time, end_time, location FROM sections ORDER BY id")).
		WillReturnRows(rows)

	catalog, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.Len())
	assert.Equal(t, []string{"CS101", "MATH200"}, catalog.Courses())
	assert.Equal(t, models.DayWed, catalog.SectionsFor("CS101")[1].Day)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCatalogLoadBadRow(t *testing.T) {
	db, mock, cleanup := newCatalogMock(t)
	defer cleanup()

	repo, err := NewPostgresCatalogRepository(db, "sections")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"course", "day", "start_time", "end_time", "location"}).
		AddRow("CS101", "Noday", "09:00", "10:30", "Room 1")
	mock.ExpectQuery("SELECT course, day, start_time, end_time, location FROM sections").
		WillReturnRows(rows)

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestPostgresCatalogRejectsBadTableName(t *testing.T) {
	db, _, cleanup := newCatalogMock(t)
	defer cleanup()

	_, err := NewPostgresCatalogRepository(db, "sections; DROP TABLE sections")
	require.Error(t, err)
}
