package service

import (
	"school-service/internal/model"
	"school-service/internal/repository"

	"gorm.io/gorm"
)

// StudentInput is the payload for creating or updating a student.
type StudentInput struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Grade     string `json:"grade" validate:"required"`
}

// StudentService manages the students of a tenant.
type StudentService struct {
	db     *gorm.DB
	policy ReferentialPolicy
}

func NewStudentService(db *gorm.DB, policy ReferentialPolicy) *StudentService {
	return &StudentService{db: db, policy: policy}
}

// List returns the tenant's students.
func (s *StudentService) List(tenantID uint) ([]model.Student, error) {
	return repository.List[model.Student](s.db, tenantID)
}

// Create validates the input and inserts a student for the tenant.
func (s *StudentService) Create(tenantID uint, in StudentInput) (*model.Student, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	student := model.Student{
		TenantID:  tenantID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Grade:     in.Grade,
	}
	if err := repository.Create(s.db, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// Update validates the input and updates the tenant's student in place.
func (s *StudentService) Update(tenantID, id uint, in StudentInput) (*model.Student, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var student *model.Student
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		student, err = repository.Find[model.Student](tx, tenantID, id)
		if err != nil {
			return err
		}
		student.FirstName = in.FirstName
		student.LastName = in.LastName
		student.Grade = in.Grade
		return repository.Save(tx, student)
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes the tenant's student, handling dependent enrollments
// according to the configured referential policy.
func (s *StudentService) Delete(tenantID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.Find[model.Student](tx, tenantID, id); err != nil {
			return err
		}
		switch s.policy {
		case PolicyRestrict:
			count, err := repository.CountWhere[model.Enrollment](tx, tenantID, "student_id = ?", id)
			if err != nil {
				return err
			}
			if count > 0 {
				return &DependentRowsError{Resource: "student", Dependents: "enrollments", Count: count}
			}
		case PolicyCascade:
			if err := repository.DeleteWhere[model.Enrollment](tx, tenantID, "student_id = ?", id); err != nil {
				return err
			}
		}
		return repository.Delete[model.Student](tx, tenantID, id)
	})
}
