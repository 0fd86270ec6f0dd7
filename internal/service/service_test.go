package service

import (
	"testing"

	"school-service/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the same error translation
// the production connection uses, so unique-index violations surface as
// gorm.ErrDuplicatedKey in tests too.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A pooled :memory: connection would get a fresh empty database per
	// connection; pin the pool to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Tenant{},
		&model.User{},
		&model.Teacher{},
		&model.Student{},
		&model.Course{},
		&model.Enrollment{},
	))
	return db
}

type fixture struct {
	db          *gorm.DB
	teachers    *TeacherService
	students    *StudentService
	courses     *CourseService
	enrollments *EnrollmentService
	accounts    *AccountService
}

func newFixture(t *testing.T, policy ReferentialPolicy) *fixture {
	t.Helper()
	db := newTestDB(t)
	return &fixture{
		db:          db,
		teachers:    NewTeacherService(db, policy),
		students:    NewStudentService(db, policy),
		courses:     NewCourseService(db, policy),
		enrollments: NewEnrollmentService(db),
		accounts:    NewAccountService(db),
	}
}

func (f *fixture) mustTeacher(t *testing.T, tenantID uint, first, last, subject string) *model.Teacher {
	t.Helper()
	teacher, err := f.teachers.Create(tenantID, TeacherInput{FirstName: first, LastName: last, Subject: subject})
	require.NoError(t, err)
	return teacher
}

func (f *fixture) mustStudent(t *testing.T, tenantID uint, first, last, grade string) *model.Student {
	t.Helper()
	student, err := f.students.Create(tenantID, StudentInput{FirstName: first, LastName: last, Grade: grade})
	require.NoError(t, err)
	return student
}

func (f *fixture) mustCourse(t *testing.T, tenantID uint, name string, teacherID uint) *model.Course {
	t.Helper()
	course, err := f.courses.Create(tenantID, CourseInput{CourseName: name, TeacherID: teacherID})
	require.NoError(t, err)
	return course
}

func (f *fixture) mustEnrollment(t *testing.T, tenantID, studentID, courseID uint, date string) *model.Enrollment {
	t.Helper()
	enrollment, err := f.enrollments.Create(tenantID, EnrollmentInput{StudentID: studentID, CourseID: courseID, EnrollmentDate: date})
	require.NoError(t, err)
	return enrollment
}
