package service

import (
	"errors"

	"school-service/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterInput is the payload for registering a school together with
// its first user account.
type RegisterInput struct {
	SchoolName string `json:"school_name" validate:"required,max=100"`
	Address    string `json:"address"`
	Email      string `json:"email" validate:"required,email,max=100"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
}

// LoginInput is the payload for authenticating a user.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountService registers tenants and authenticates their users. It is
// the only service that queries without a tenant filter: a login has to
// locate the user by email before the tenant is known.
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// Register creates a tenant and its first admin user in one transaction.
// The tenant ID is assigned here and never changes afterwards.
func (s *AccountService) Register(in RegisterInput) (*model.Tenant, *model.User, error) {
	if err := checkInput(in); err != nil {
		return nil, nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}
	tenant := &model.Tenant{SchoolName: in.SchoolName, Address: in.Address}
	user := &model.User{Email: in.Email, PasswordHash: string(hash), Role: "admin"}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return err
		}
		user.TenantID = tenant.ID
		return tx.Create(user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, newValidationError("email", "email is already registered")
		}
		return nil, nil, err
	}
	return tenant, user, nil
}

// Login verifies the credentials and returns the user with its tenant.
func (s *AccountService) Login(in LoginInput) (*model.User, *model.Tenant, error) {
	if err := checkInput(in); err != nil {
		return nil, nil, err
	}
	var user model.User
	result := s.db.Where("email = ?", in.Email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, result.Error
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	var tenant model.Tenant
	if err := s.db.First(&tenant, user.TenantID).Error; err != nil {
		return nil, nil, err
	}
	return &user, &tenant, nil
}
