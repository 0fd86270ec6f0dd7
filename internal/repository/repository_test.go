package repository

import (
	"errors"
	"testing"

	"school-service/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Teacher{}, &model.Enrollment{}))
	return db
}

func seedTeacher(t *testing.T, db *gorm.DB, tenantID uint, first string) *model.Teacher {
	t.Helper()
	teacher := &model.Teacher{TenantID: tenantID, FirstName: first, LastName: "Doe", Subject: "Math"}
	require.NoError(t, Create(db, teacher))
	return teacher
}

func TestListIsTenantScoped(t *testing.T) {
	db := newTestDB(t)
	seedTeacher(t, db, 1, "Jane")
	seedTeacher(t, db, 1, "Tom")
	seedTeacher(t, db, 2, "Eva")

	one, err := List[model.Teacher](db, 1)
	require.NoError(t, err)
	assert.Len(t, one, 2)

	two, err := List[model.Teacher](db, 2)
	require.NoError(t, err)
	require.Len(t, two, 1)
	assert.Equal(t, "Eva", two[0].FirstName)

	three, err := List[model.Teacher](db, 3)
	require.NoError(t, err)
	assert.Empty(t, three)
}

func TestFindRejectsCrossTenant(t *testing.T) {
	db := newTestDB(t)
	teacher := seedTeacher(t, db, 1, "Jane")

	found, err := Find[model.Teacher](db, 1, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", found.FirstName)

	_, err = Find[model.Teacher](db, 2, teacher.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteRejectsCrossTenant(t *testing.T) {
	db := newTestDB(t)
	teacher := seedTeacher(t, db, 1, "Jane")

	err := Delete[model.Teacher](db, 2, teacher.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, Delete[model.Teacher](db, 1, teacher.ID))
	err = Delete[model.Teacher](db, 1, teacher.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEnrollmentExistsExcludesEditedRow(t *testing.T) {
	db := newTestDB(t)
	enrollment := &model.Enrollment{TenantID: 1, StudentID: 5, CourseID: 9, TeacherID: 2, EnrollmentDate: "2025-01-10"}
	require.NoError(t, Create(db, enrollment))

	exists, err := EnrollmentExists(db, 1, 5, 9, 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// The row being edited does not count against itself.
	exists, err = EnrollmentExists(db, 1, 5, 9, enrollment.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Other tenants are not consulted.
	exists, err = EnrollmentExists(db, 2, 5, 9, 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCountWhereAndDeleteWhere(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Create(db, &model.Enrollment{TenantID: 1, StudentID: 5, CourseID: 9, TeacherID: 2, EnrollmentDate: "2025-01-10"}))
	require.NoError(t, Create(db, &model.Enrollment{TenantID: 1, StudentID: 6, CourseID: 9, TeacherID: 2, EnrollmentDate: "2025-01-11"}))
	require.NoError(t, Create(db, &model.Enrollment{TenantID: 2, StudentID: 5, CourseID: 9, TeacherID: 2, EnrollmentDate: "2025-01-12"}))

	count, err := CountWhere[model.Enrollment](db, 1, "course_id = ?", 9)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, DeleteWhere[model.Enrollment](db, 1, "course_id = ?", 9))

	count, err = CountWhere[model.Enrollment](db, 1, "course_id = ?", 9)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Tenant 2's row survives.
	count, err = CountWhere[model.Enrollment](db, 2, "course_id = ?", 9)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
