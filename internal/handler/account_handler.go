package handler

import (
	"errors"
	"net/http"

	"school-service/internal/service"
	"school-service/pkg/jwtutil"
	"school-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AccountHandler serves tenant registration and login. These are the
// only unauthenticated mutation routes: registration creates the tenant,
// login mints the token that scopes every later request to it.
type AccountHandler struct {
	accounts *service.AccountService
	jwt      *jwtutil.JWTUtil
}

func NewAccountHandler(accounts *service.AccountService, jwt *jwtutil.JWTUtil) *AccountHandler {
	return &AccountHandler{accounts: accounts, jwt: jwt}
}

// Register creates a school and its first admin user.
func (h *AccountHandler) Register(c echo.Context) error {
	log := logger.FromEcho(c)

	var in service.RegisterInput
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	tenant, user, err := h.accounts.Register(in)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Tenant registered",
		zap.Uint("tenant_id", tenant.ID),
		zap.String("school_name", tenant.SchoolName))
	return c.JSON(http.StatusCreated, echo.Map{
		"tenant": tenant,
		"user":   user,
	})
}

// Login verifies credentials and issues a JWT carrying the tenant claims.
func (h *AccountHandler) Login(c echo.Context) error {
	log := logger.FromEcho(c)

	var in service.LoginInput
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	user, tenant, err := h.accounts.Login(in)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn("Failed login attempt", zap.String("email", in.Email))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid email or password"})
		}
		return writeServiceError(c, log, err)
	}

	token, err := h.jwt.GenerateToken(user.Email, user.ID, user.TenantID, tenant.SchoolName, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	log.Info("User logged in",
		zap.Uint("user_id", user.ID),
		zap.Uint("tenant_id", user.TenantID))
	return c.JSON(http.StatusOK, echo.Map{
		"token":  token,
		"tenant": tenant,
	})
}
