package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-scheduler-api/internal/models"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCSVCatalogLoad(t *testing.T) {
	path := writeCatalogFile(t, `course,day,start_time,end_time,location
CS101,Mon,09:00,10:30,Room 1
CS101,Wed,14:00,15:30,Room 2
MATH200,Tue,11:00,12:30,Hall A
`)

	catalog, err := NewCSVCatalogRepository(path).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, catalog.Len())
	require.Equal(t, []string{"CS101", "MATH200"}, catalog.Courses())

	sections := catalog.SectionsFor("CS101")
	require.Len(t, sections, 2)
	require.Equal(t, models.DayMon, sections[0].Day)
	require.Equal(t, models.DayWed, sections[1].Day)
	require.Equal(t, 540, sections[0].StartMinutes())
}

func TestCSVCatalogLoadReorderedColumns(t *testing.T) {
	path := writeCatalogFile(t, `location,end_time,start_time,day,course
Room 1,10:30,09:00,Mon,CS101
`)

	catalog, err := NewCSVCatalogRepository(path).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, catalog.Len())

	section := catalog.SectionsFor("CS101")[0]
	require.Equal(t, "09:00", section.StartTime)
	require.Equal(t, "Room 1", section.Location)
}

func TestCSVCatalogLoadMissingColumn(t *testing.T) {
	path := writeCatalogFile(t, `course,day,start_time,end_time
CS101,Mon,09:00,10:30
`)

	_, err := NewCSVCatalogRepository(path).Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "location")
}

func TestCSVCatalogLoadBadDay(t *testing.T) {
	path := writeCatalogFile(t, `course,day,start_time,end_time,location
CS101,Mon,09:00,10:30,Room 1
MATH200,Noday,11:00,12:30,Hall A
`)

	_, err := NewCSVCatalogRepository(path).Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "row 3")
}

func TestCSVCatalogLoadBadClock(t *testing.T) {
	path := writeCatalogFile(t, `course,day,start_time,end_time,location
CS101,Mon,9am,10:30,Room 1
`)

	_, err := NewCSVCatalogRepository(path).Load(context.Background())
	require.Error(t, err)
}

func TestCSVCatalogLoadMissingFile(t *testing.T) {
	_, err := NewCSVCatalogRepository(filepath.Join(t.TempDir(), "nope.csv")).Load(context.Background())
	require.Error(t, err)
}
