package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"contactbook/internal/auth"
	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
	"contactbook/internal/service"
)

// SimpleAuthHandler serves the manually-validated endpoint family with
// opaque debug tokens. Kept for low-friction testing; clients depend on
// its looser contract (no gender enum, no password minimum, no confirm).
type SimpleAuthHandler struct {
	users  service.UserService
	tokens auth.TokenService
}

// NewSimpleAuthHandler creates a new simplified auth handler.
func NewSimpleAuthHandler(users service.UserService, tokens auth.TokenService) *SimpleAuthHandler {
	return &SimpleAuthHandler{users: users, tokens: tokens}
}

// simpleRegisterRequest mirrors the strict payload without validator tags.
type simpleRegisterRequest struct {
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	DateOfBirth  string   `json:"date_of_birth"`
	Gender       string   `json:"gender"`
	PhoneNumbers []string `json:"phone_numbers"`
	Address      string   `json:"address"`
}

// simpleUserView is the shallow projection the simplified family returns.
type simpleUserView struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func simpleView(user *model.User) simpleUserView {
	return simpleUserView{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

func fieldRequired(field string) error {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		Error: "Field " + field + " is required",
		Code:  "VALIDATION_ERROR",
	})
}

// Register godoc
// @Summary Register a new user (simplified scheme)
// @Tags simple_auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /simple_auth/register [post]
func (h *SimpleAuthHandler) Register(c echo.Context) error {
	var req simpleRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}

	// Manual validation, checked in a fixed order.
	checks := []struct {
		field string
		empty bool
	}{
		{"first_name", req.FirstName == ""},
		{"last_name", req.LastName == ""},
		{"email", req.Email == ""},
		{"password", req.Password == ""},
		{"gender", req.Gender == ""},
		{"phone_numbers", len(req.PhoneNumbers) == 0},
		{"address", req.Address == ""},
	}
	for _, check := range checks {
		if check.empty {
			return fieldRequired(check.field)
		}
	}

	user, err := h.users.Register(c.Request().Context(), service.RegisterInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     req.Password,
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
		PhoneNumbers: req.PhoneNumbers,
		Address:      req.Address,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to issue token",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user":    simpleView(user),
		"token":   token,
	})
}

// Login godoc
// @Summary Log in (simplified scheme)
// @Tags simple_auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /simple_auth/login [post]
func (h *SimpleAuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Email and password are required",
			Code:  "VALIDATION_ERROR",
		})
	}

	user, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to issue token",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Successfully logged in",
		"user":    simpleView(user),
		"token":   token,
	})
}
