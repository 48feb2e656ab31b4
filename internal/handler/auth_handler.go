package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"contactbook/internal/auth"
	apperrors "contactbook/internal/errors"
	"contactbook/internal/middleware"
	"contactbook/internal/model"
	"contactbook/internal/service"
	"contactbook/internal/storage"
)

// AuthHandler serves the schema-validated endpoint family with signed tokens.
type AuthHandler struct {
	users  service.UserService
	tokens auth.TokenService
	images *storage.ImageStore
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users service.UserService, tokens auth.TokenService, images *storage.ImageStore) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, images: images}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	FirstName       string   `json:"first_name" form:"first_name" validate:"required,max=100"`
	LastName        string   `json:"last_name" form:"last_name" validate:"required,max=100"`
	Email           string   `json:"email" form:"email" validate:"required,email"`
	Password        string   `json:"password" form:"password" validate:"required,min=6"`
	ConfirmPassword string   `json:"confirm_password" form:"confirm_password" validate:"required,eqfield=Password"`
	DateOfBirth     string   `json:"date_of_birth" form:"date_of_birth" validate:"required"`
	Gender          string   `json:"gender" form:"gender" validate:"required,oneof=Male Female Other"`
	PhoneNumbers    []string `json:"phone_numbers" validate:"required,min=1"`
	Address         string   `json:"address" form:"address" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse wraps the user projection and the issued bearer token.
type AuthResponse struct {
	Message string               `json:"message"`
	User    model.UserProjection `json:"user"`
	Token   string               `json:"token"`
}

// Register godoc
// @Summary Register a new user
// @Description Accepts JSON or multipart/form-data; multipart may carry an optional profile_picture image.
// @Tags auth
// @Accept json
// @Accept mpfd
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	profilePicture := ""

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		req = RegisterRequest{
			FirstName:       c.FormValue("first_name"),
			LastName:        c.FormValue("last_name"),
			Email:           c.FormValue("email"),
			Password:        c.FormValue("password"),
			ConfirmPassword: c.FormValue("confirm_password"),
			DateOfBirth:     c.FormValue("date_of_birth"),
			Gender:          c.FormValue("gender"),
			Address:         c.FormValue("address"),
		}
		// phone_numbers arrives as a JSON-encoded array in a form field
		if raw := c.FormValue("phone_numbers"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.PhoneNumbers); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
					Error: "phone_numbers must be a JSON array of strings",
					Code:  "VALIDATION_ERROR",
				})
			}
		}

		if file, err := c.FormFile("profile_picture"); err == nil && file != nil {
			name, err := h.images.Save(file)
			if err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			profilePicture = name
		}
	} else {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "invalid request body",
				Code:  "VALIDATION_ERROR",
			})
		}
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	user, err := h.users.Register(c.Request().Context(), service.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		DateOfBirth:     req.DateOfBirth,
		Gender:          req.Gender,
		PhoneNumbers:    req.PhoneNumbers,
		Address:         req.Address,
		ProfilePicture:  profilePicture,
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

	return c.JSON(http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		User:    user.Projection(),
		Token:   token,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "email and password are required",
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

	return c.JSON(http.StatusOK, AuthResponse{
		Message: "Successfully logged in",
		User:    user.Projection(),
		Token:   token,
	})
}

// TestToken godoc
// @Summary Validate the presented bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/test-token [get]
func (h *AuthHandler) TestToken(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: apperrors.ErrUnauthorized.Error(),
			Code:  "UNAUTHORIZED",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Token is valid",
		"user":    user.Projection(),
	})
}
