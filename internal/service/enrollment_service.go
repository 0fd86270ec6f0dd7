package service

import (
	"errors"
	"time"

	"school-service/internal/model"
	"school-service/internal/repository"

	"gorm.io/gorm"
)

const enrollmentDateLayout = "2006-01-02"

// EnrollmentInput is the payload for creating or updating an enrollment.
// The teacher is derived server-side from the selected course, so the
// payload does not carry a teacher_id; a stale client value can never
// disagree with the course's current teacher.
type EnrollmentInput struct {
	StudentID      uint   `json:"student_id" validate:"required"`
	CourseID       uint   `json:"course_id" validate:"required"`
	EnrollmentDate string `json:"enrollment_date" validate:"required"`
}

// EnrollmentService manages the enrollments of a tenant and enforces the
// one-enrollment-per-(student, course) rule. The rule is checked up
// front for a friendly error, but the composite unique index on the
// table is the authority: a duplicate-key failure at write time is
// reported as the same DuplicateEnrollmentError, so two concurrent
// requests for the same pair cannot both succeed.
type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// List returns the tenant's enrollments.
func (s *EnrollmentService) List(tenantID uint) ([]model.Enrollment, error) {
	return repository.List[model.Enrollment](s.db, tenantID)
}

// Create validates the input, verifies both references against the
// tenant and inserts the enrollment with the course's current teacher.
func (s *EnrollmentService) Create(tenantID uint, in EnrollmentInput) (*model.Enrollment, error) {
	if err := s.checkInput(in); err != nil {
		return nil, err
	}
	var enrollment *model.Enrollment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		course, err := s.checkRefs(tx, tenantID, in)
		if err != nil {
			return err
		}
		exists, err := repository.EnrollmentExists(tx, tenantID, in.StudentID, in.CourseID, 0)
		if err != nil {
			return err
		}
		if exists {
			return &DuplicateEnrollmentError{StudentID: in.StudentID, CourseID: in.CourseID}
		}
		enrollment = &model.Enrollment{
			TenantID:       tenantID,
			StudentID:      in.StudentID,
			CourseID:       in.CourseID,
			TeacherID:      course.TeacherID,
			EnrollmentDate: in.EnrollmentDate,
		}
		return repository.Create(tx, enrollment)
	})
	if err != nil {
		return nil, s.translateDuplicate(err, in)
	}
	return enrollment, nil
}

// Update validates the input and updates the tenant's enrollment. The
// duplicate check excludes the row itself, so re-saving an enrollment
// with its own (student, course) pair succeeds.
func (s *EnrollmentService) Update(tenantID, id uint, in EnrollmentInput) (*model.Enrollment, error) {
	if err := s.checkInput(in); err != nil {
		return nil, err
	}
	var enrollment *model.Enrollment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		enrollment, err = repository.Find[model.Enrollment](tx, tenantID, id)
		if err != nil {
			return err
		}
		course, err := s.checkRefs(tx, tenantID, in)
		if err != nil {
			return err
		}
		exists, err := repository.EnrollmentExists(tx, tenantID, in.StudentID, in.CourseID, id)
		if err != nil {
			return err
		}
		if exists {
			return &DuplicateEnrollmentError{StudentID: in.StudentID, CourseID: in.CourseID}
		}
		enrollment.StudentID = in.StudentID
		enrollment.CourseID = in.CourseID
		enrollment.TeacherID = course.TeacherID
		enrollment.EnrollmentDate = in.EnrollmentDate
		return repository.Save(tx, enrollment)
	})
	if err != nil {
		return nil, s.translateDuplicate(err, in)
	}
	return enrollment, nil
}

// Delete removes the tenant's enrollment.
func (s *EnrollmentService) Delete(tenantID, id uint) error {
	return repository.Delete[model.Enrollment](s.db, tenantID, id)
}

func (s *EnrollmentService) checkInput(in EnrollmentInput) error {
	if err := checkInput(in); err != nil {
		return err
	}
	if _, err := time.Parse(enrollmentDateLayout, in.EnrollmentDate); err != nil {
		return newValidationError("enrollment_date", "enrollment_date must be a date in YYYY-MM-DD format")
	}
	return nil
}

// checkRefs verifies that the student and course both belong to the
// tenant and returns the course for teacher derivation.
func (s *EnrollmentService) checkRefs(tx *gorm.DB, tenantID uint, in EnrollmentInput) (*model.Course, error) {
	if _, err := repository.Find[model.Student](tx, tenantID, in.StudentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newValidationError("student_id", "the selected student does not exist for this school")
		}
		return nil, err
	}
	course, err := repository.Find[model.Course](tx, tenantID, in.CourseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newValidationError("course_id", "the selected course does not exist for this school")
		}
		return nil, err
	}
	return course, nil
}

// translateDuplicate maps a unique-index violation surfaced by the
// driver into the service-level duplicate error. This is the path taken
// when two requests race past the pre-check.
func (s *EnrollmentService) translateDuplicate(err error, in EnrollmentInput) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateEnrollmentError{StudentID: in.StudentID, CourseID: in.CourseID}
	}
	return err
}
