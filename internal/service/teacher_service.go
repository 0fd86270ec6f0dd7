package service

import (
	"school-service/internal/model"
	"school-service/internal/repository"

	"gorm.io/gorm"
)

// TeacherInput is the payload for creating or updating a teacher.
type TeacherInput struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Subject   string `json:"subject" validate:"required,max=50"`
}

// TeacherService manages the teachers of a tenant.
type TeacherService struct {
	db     *gorm.DB
	policy ReferentialPolicy
}

func NewTeacherService(db *gorm.DB, policy ReferentialPolicy) *TeacherService {
	return &TeacherService{db: db, policy: policy}
}

// List returns the tenant's teachers.
func (s *TeacherService) List(tenantID uint) ([]model.Teacher, error) {
	return repository.List[model.Teacher](s.db, tenantID)
}

// Create validates the input and inserts a teacher for the tenant.
func (s *TeacherService) Create(tenantID uint, in TeacherInput) (*model.Teacher, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	teacher := model.Teacher{
		TenantID:  tenantID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Subject:   in.Subject,
	}
	if err := repository.Create(s.db, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Update validates the input and updates the tenant's teacher in place.
func (s *TeacherService) Update(tenantID, id uint, in TeacherInput) (*model.Teacher, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var teacher *model.Teacher
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		teacher, err = repository.Find[model.Teacher](tx, tenantID, id)
		if err != nil {
			return err
		}
		teacher.FirstName = in.FirstName
		teacher.LastName = in.LastName
		teacher.Subject = in.Subject
		return repository.Save(tx, teacher)
	})
	if err != nil {
		return nil, err
	}
	return teacher, nil
}

// Delete removes the tenant's teacher. Dependent courses and enrollments
// are handled according to the configured referential policy.
func (s *TeacherService) Delete(tenantID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.Find[model.Teacher](tx, tenantID, id); err != nil {
			return err
		}
		switch s.policy {
		case PolicyRestrict:
			count, err := repository.CountWhere[model.Course](tx, tenantID, "teacher_id = ?", id)
			if err != nil {
				return err
			}
			if count > 0 {
				return &DependentRowsError{Resource: "teacher", Dependents: "courses", Count: count}
			}
			count, err = repository.CountWhere[model.Enrollment](tx, tenantID, "teacher_id = ?", id)
			if err != nil {
				return err
			}
			if count > 0 {
				return &DependentRowsError{Resource: "teacher", Dependents: "enrollments", Count: count}
			}
		case PolicyCascade:
			if err := repository.DeleteWhere[model.Enrollment](tx, tenantID, "teacher_id = ?", id); err != nil {
				return err
			}
			if err := repository.DeleteWhere[model.Course](tx, tenantID, "teacher_id = ?", id); err != nil {
				return err
			}
		}
		return repository.Delete[model.Teacher](tx, tenantID, id)
	})
}
