package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"volunteer-tracker-go/internal/db/dbtest"
	categorydomain "volunteer-tracker-go/internal/domain/category"
	familydomain "volunteer-tracker-go/internal/domain/family"
	yeardomain "volunteer-tracker-go/internal/domain/schoolyear"
	taskdomain "volunteer-tracker-go/internal/domain/task"
	userdomain "volunteer-tracker-go/internal/domain/user"
	"volunteer-tracker-go/pkg/civil"
)

func seed(t *testing.T, gormDB *gorm.DB) {
	t.Helper()
	archivedAt := time.Now().UTC()
	require.NoError(t, gormDB.Create(&familydomain.Family{ID: "fam-b", Name: "Baker"}).Error)
	require.NoError(t, gormDB.Create(&familydomain.Family{ID: "fam-a", Name: "Adams"}).Error)
	require.NoError(t, gormDB.Create(&familydomain.Family{ID: "fam-z", Name: "Zed", ArchivedAt: &archivedAt}).Error)

	familyID := "fam-a"
	require.NoError(t, gormDB.Create(&userdomain.User{ID: "u1", Email: "a@example.com", Role: userdomain.RoleParent, FamilyID: &familyID}).Error)
	require.NoError(t, gormDB.Create(&categorydomain.Category{ID: "c1", Name: "Library", IsActive: true}).Error)
	require.NoError(t, gormDB.Create(&categorydomain.Category{ID: "c2", Name: "Bake Sale", IsActive: true}).Error)

	for _, id := range []string{"y1", "y0"} {
		require.NoError(t, gormDB.Create(&yeardomain.SchoolYear{
			ID: id, Name: id, StartDate: civil.MustParse("2024-09-01"), EndDate: civil.MustParse("2025-06-30"),
			RequiredHours: 50, HourlyRateCents: 2000,
		}).Error)
	}
}

func insertTask(t *testing.T, gormDB *gorm.DB, id, yearID, categoryID string, hours float64) {
	t.Helper()
	require.NoError(t, gormDB.Create(&taskdomain.Task{
		ID: id, FamilyID: "fam-a", SchoolYearID: yearID, UserID: "u1", CategoryID: categoryID,
		Hours: hours, Date: civil.MustParse("2024-10-01"),
	}).Error)
}

func TestFamilyHoursIncludesIdleFamilies(t *testing.T) {
	gormDB := dbtest.Open(t)
	seed(t, gormDB)
	insertTask(t, gormDB, "t1", "y1", "c1", 2.5)
	insertTask(t, gormDB, "t2", "y1", "c2", 4)
	insertTask(t, gormDB, "t3", "y0", "c1", 10)

	rows, err := NewGorm(gormDB).FamilyHours(context.Background(), "y1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Adams", rows[0].FamilyName)
	assert.Equal(t, 6.5, rows[0].TotalHours)
	assert.Equal(t, int64(2), rows[0].TaskCount)

	assert.Equal(t, "fam-b", rows[1].FamilyID)
	assert.Equal(t, 0.0, rows[1].TotalHours)
	assert.Equal(t, int64(0), rows[1].TaskCount)
}

func TestCategoryHoursOrdersByHours(t *testing.T) {
	gormDB := dbtest.Open(t)
	seed(t, gormDB)
	insertTask(t, gormDB, "t1", "y1", "c1", 1)
	insertTask(t, gormDB, "t2", "y1", "c2", 3)
	insertTask(t, gormDB, "t3", "y1", "c1", 0.5)
	insertTask(t, gormDB, "t4", "y0", "c1", 10)

	rows, err := NewGorm(gormDB).CategoryHours(context.Background(), "y1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bake Sale", rows[0].CategoryName)
	assert.Equal(t, 3.0, rows[0].TotalHours)
	assert.Equal(t, "c1", rows[1].CategoryID)
	assert.Equal(t, 1.5, rows[1].TotalHours)
	assert.Equal(t, int64(2), rows[1].TaskCount)

	empty, err := NewGorm(gormDB).CategoryHours(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
