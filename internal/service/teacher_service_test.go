package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeacherCreateAndList(t *testing.T) {
	f := newFixture(t, PolicyOrphan)

	created := f.mustTeacher(t, 1, "Jane", "Doe", "Math")
	assert.NotZero(t, created.ID)
	assert.Equal(t, uint(1), created.TenantID)

	teachers, err := f.teachers.List(1)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "Jane", teachers[0].FirstName)
	assert.Equal(t, "Doe", teachers[0].LastName)
	assert.Equal(t, "Math", teachers[0].Subject)
}

func TestTeacherCreateValidation(t *testing.T) {
	f := newFixture(t, PolicyOrphan)

	_, err := f.teachers.Create(1, TeacherInput{FirstName: "Jane", LastName: "Doe"})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "subject")

	_, err = f.teachers.Create(1, TeacherInput{})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "first_name")
	assert.Contains(t, validationErr.Fields, "last_name")
	assert.Contains(t, validationErr.Fields, "subject")

	_, err = f.teachers.Create(1, TeacherInput{
		FirstName: strings.Repeat("x", 51),
		LastName:  "Doe",
		Subject:   "Math",
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "first_name")
}

func TestTeacherUpdate(t *testing.T) {
	f := newFixture(t, PolicyOrphan)
	teacher := f.mustTeacher(t, 1, "Jane", "Doe", "Math")

	updated, err := f.teachers.Update(1, teacher.ID, TeacherInput{FirstName: "Janet", LastName: "Doe", Subject: "Physics"})
	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.FirstName)
	assert.Equal(t, "Physics", updated.Subject)

	teachers, err := f.teachers.List(1)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "Janet", teachers[0].FirstName)
}

func TestTeacherTenantIsolation(t *testing.T) {
	f := newFixture(t, PolicyOrphan)
	teacher := f.mustTeacher(t, 1, "Jane", "Doe", "Math")

	// Another tenant must not see, update or delete tenant 1's teacher.
	teachers, err := f.teachers.List(2)
	require.NoError(t, err)
	assert.Empty(t, teachers)

	_, err = f.teachers.Update(2, teacher.ID, TeacherInput{FirstName: "Evil", LastName: "Tenant", Subject: "Hacking"})
	assert.True(t, errors.Is(err, ErrNotFound))

	err = f.teachers.Delete(2, teacher.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	// The row is untouched for its owner.
	teachers, err = f.teachers.List(1)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "Jane", teachers[0].FirstName)
}

func TestTeacherDeleteMissing(t *testing.T) {
	f := newFixture(t, PolicyOrphan)
	err := f.teachers.Delete(1, 12345)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTeacherDeletePolicies(t *testing.T) {
	t.Run("orphan leaves dependents", func(t *testing.T) {
		f := newFixture(t, PolicyOrphan)
		teacher := f.mustTeacher(t, 1, "Jane", "Doe", "Math")
		course := f.mustCourse(t, 1, "Algebra I", teacher.ID)
		student := f.mustStudent(t, 1, "Sam", "Lee", "Grade 5")
		f.mustEnrollment(t, 1, student.ID, course.ID, "2025-01-10")

		require.NoError(t, f.teachers.Delete(1, teacher.ID))

		courses, err := f.courses.List(1)
		require.NoError(t, err)
		assert.Len(t, courses, 1)
		enrollments, err := f.enrollments.List(1)
		require.NoError(t, err)
		assert.Len(t, enrollments, 1)
	})

	t.Run("restrict refuses while dependents exist", func(t *testing.T) {
		f := newFixture(t, PolicyRestrict)
		teacher := f.mustTeacher(t, 1, "Jane", "Doe", "Math")
		f.mustCourse(t, 1, "Algebra I", teacher.ID)

		err := f.teachers.Delete(1, teacher.ID)
		var dependentsErr *DependentRowsError
		require.ErrorAs(t, err, &dependentsErr)
		assert.Equal(t, "teacher", dependentsErr.Resource)
		assert.Equal(t, "courses", dependentsErr.Dependents)

		teachers, err := f.teachers.List(1)
		require.NoError(t, err)
		assert.Len(t, teachers, 1)
	})

	t.Run("cascade removes dependents", func(t *testing.T) {
		f := newFixture(t, PolicyCascade)
		teacher := f.mustTeacher(t, 1, "Jane", "Doe", "Math")
		course := f.mustCourse(t, 1, "Algebra I", teacher.ID)
		student := f.mustStudent(t, 1, "Sam", "Lee", "Grade 5")
		f.mustEnrollment(t, 1, student.ID, course.ID, "2025-01-10")

		require.NoError(t, f.teachers.Delete(1, teacher.ID))

		courses, err := f.courses.List(1)
		require.NoError(t, err)
		assert.Empty(t, courses)
		enrollments, err := f.enrollments.List(1)
		require.NoError(t, err)
		assert.Empty(t, enrollments)
	})
}
