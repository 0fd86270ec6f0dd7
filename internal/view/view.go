// Package view shapes entity collections into the payloads the list
// endpoints return. Foreign keys are resolved through id-keyed lookup
// maps built here, so the UI can render a teacher's name on a course row
// without the persistence layer traversing relationships.
package view

import "school-service/internal/model"

// PersonRef is the slimmed-down entry used to resolve a teacher or
// student id to a displayable name.
type PersonRef struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CourseRef is the slimmed-down entry used to resolve a course id on an
// enrollment row.
type CourseRef struct {
	ID         uint   `json:"id"`
	CourseName string `json:"course_name"`
	TeacherID  uint   `json:"teacher_id"`
}

// TeacherDirectory keys the tenant's teachers by id.
func TeacherDirectory(teachers []model.Teacher) map[uint]PersonRef {
	dir := make(map[uint]PersonRef, len(teachers))
	for _, t := range teachers {
		dir[t.ID] = PersonRef{ID: t.ID, FirstName: t.FirstName, LastName: t.LastName}
	}
	return dir
}

// StudentDirectory keys the tenant's students by id.
func StudentDirectory(students []model.Student) map[uint]PersonRef {
	dir := make(map[uint]PersonRef, len(students))
	for _, s := range students {
		dir[s.ID] = PersonRef{ID: s.ID, FirstName: s.FirstName, LastName: s.LastName}
	}
	return dir
}

// CourseDirectory keys the tenant's courses by id.
func CourseDirectory(courses []model.Course) map[uint]CourseRef {
	dir := make(map[uint]CourseRef, len(courses))
	for _, c := range courses {
		dir[c.ID] = CourseRef{ID: c.ID, CourseName: c.CourseName, TeacherID: c.TeacherID}
	}
	return dir
}

// CourseList is the payload of GET /courses: the rows plus the teacher
// directory needed to print each course's teacher.
type CourseList struct {
	Courses  []model.Course     `json:"courses"`
	Teachers map[uint]PersonRef `json:"teachers"`
}

// NewCourseList assembles the course list payload.
func NewCourseList(courses []model.Course, teachers []model.Teacher) CourseList {
	return CourseList{Courses: courses, Teachers: TeacherDirectory(teachers)}
}

// EnrollmentList is the payload of GET /enrollments: the rows plus the
// directories needed to print student, course and teacher names.
type EnrollmentList struct {
	Enrollments []model.Enrollment `json:"enrollments"`
	Students    map[uint]PersonRef `json:"students"`
	Courses     map[uint]CourseRef `json:"courses"`
	Teachers    map[uint]PersonRef `json:"teachers"`
}

// NewEnrollmentList assembles the enrollment list payload.
func NewEnrollmentList(enrollments []model.Enrollment, students []model.Student, courses []model.Course, teachers []model.Teacher) EnrollmentList {
	return EnrollmentList{
		Enrollments: enrollments,
		Students:    StudentDirectory(students),
		Courses:     CourseDirectory(courses),
		Teachers:    TeacherDirectory(teachers),
	}
}
