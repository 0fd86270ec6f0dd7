package service

import (
	"errors"

	"school-service/internal/model"
	"school-service/internal/repository"

	"gorm.io/gorm"
)

// CourseInput is the payload for creating or updating a course.
type CourseInput struct {
	CourseName  string `json:"course_name" validate:"required,max=100"`
	Description string `json:"description"`
	TeacherID   uint   `json:"teacher_id" validate:"required"`
}

// CourseService manages the courses of a tenant. Every write checks that
// the referenced teacher belongs to the same tenant; a teacher id from
// another school is reported as a plain validation failure.
type CourseService struct {
	db     *gorm.DB
	policy ReferentialPolicy
}

func NewCourseService(db *gorm.DB, policy ReferentialPolicy) *CourseService {
	return &CourseService{db: db, policy: policy}
}

// List returns the tenant's courses.
func (s *CourseService) List(tenantID uint) ([]model.Course, error) {
	return repository.List[model.Course](s.db, tenantID)
}

// Create validates the input, verifies the teacher reference and inserts
// a course for the tenant.
func (s *CourseService) Create(tenantID uint, in CourseInput) (*model.Course, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var course *model.Course
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkTeacherRef(tx, tenantID, in.TeacherID); err != nil {
			return err
		}
		course = &model.Course{
			TenantID:    tenantID,
			CourseName:  in.CourseName,
			Description: in.Description,
			TeacherID:   in.TeacherID,
		}
		return repository.Create(tx, course)
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

// Update validates the input, verifies the teacher reference and updates
// the tenant's course in place.
func (s *CourseService) Update(tenantID, id uint, in CourseInput) (*model.Course, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var course *model.Course
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		course, err = repository.Find[model.Course](tx, tenantID, id)
		if err != nil {
			return err
		}
		if err := s.checkTeacherRef(tx, tenantID, in.TeacherID); err != nil {
			return err
		}
		course.CourseName = in.CourseName
		course.Description = in.Description
		course.TeacherID = in.TeacherID
		return repository.Save(tx, course)
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes the tenant's course, handling dependent enrollments
// according to the configured referential policy.
func (s *CourseService) Delete(tenantID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.Find[model.Course](tx, tenantID, id); err != nil {
			return err
		}
		switch s.policy {
		case PolicyRestrict:
			count, err := repository.CountWhere[model.Enrollment](tx, tenantID, "course_id = ?", id)
			if err != nil {
				return err
			}
			if count > 0 {
				return &DependentRowsError{Resource: "course", Dependents: "enrollments", Count: count}
			}
		case PolicyCascade:
			if err := repository.DeleteWhere[model.Enrollment](tx, tenantID, "course_id = ?", id); err != nil {
				return err
			}
		}
		return repository.Delete[model.Course](tx, tenantID, id)
	})
}

func (s *CourseService) checkTeacherRef(tx *gorm.DB, tenantID, teacherID uint) error {
	_, err := repository.Find[model.Teacher](tx, tenantID, teacherID)
	if errors.Is(err, repository.ErrNotFound) {
		return newValidationError("teacher_id", "the selected teacher does not exist for this school")
	}
	return err
}
