package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
	"contactbook/internal/repository"
)

const bcryptCost = 10

// dateLayouts lists accepted date-of-birth formats, ISO first with a
// legacy MM-DD-YYYY fallback.
var dateLayouts = []string{model.DateOnly, "01-02-2006"}

// RegisterInput carries the fields accepted at registration time.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	DateOfBirth     string
	Gender          string
	PhoneNumbers    []string
	Address         string
	ProfilePicture  string
}

// UserService is the user directory: registration, login and id lookup.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	repo     repository.UserRepository
	validate *validator.Validate
}

// NewUserService builds the user directory over a repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo:     repo,
		validate: validator.New(),
	}
}

// NormalizeEmail trims and lowercases an email so uniqueness and lookups
// are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates and persists a new user. Validation order is fixed:
// required fields, email format and uniqueness, password confirmation,
// date parsing, then persist.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	required := []struct {
		field string
		value string
	}{
		{"first_name", input.FirstName},
		{"last_name", input.LastName},
		{"email", input.Email},
		{"password", input.Password},
		{"date_of_birth", input.DateOfBirth},
		{"gender", input.Gender},
		{"address", input.Address},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, apperrors.NewValidationError(f.field, "is required")
		}
	}
	if utf8.RuneCountInString(input.FirstName) > 100 {
		return nil, apperrors.NewValidationError("first_name", "must be at most 100 characters")
	}
	if utf8.RuneCountInString(input.LastName) > 100 {
		return nil, apperrors.NewValidationError("last_name", "must be at most 100 characters")
	}

	email := NormalizeEmail(input.Email)
	if err := s.validate.Var(email, "email"); err != nil {
		return nil, apperrors.NewValidationError("email", "is not a valid email address")
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email existence: %w", err)
	}

	if input.ConfirmPassword != "" && input.ConfirmPassword != input.Password {
		return nil, apperrors.NewValidationError("confirm_password", "passwords must match")
	}

	dateOfBirth, err := ParseDate(input.DateOfBirth)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          email,
		PasswordHash:   string(hashed),
		DateOfBirth:    dateOfBirth,
		Gender:         input.Gender,
		Address:        input.Address,
		ProfilePicture: input.ProfilePicture,
	}
	if err := user.SetPhoneNumbers(input.PhoneNumbers); err != nil {
		return nil, fmt.Errorf("encode phone numbers: %w", err)
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates by normalized email and password. Unknown email and
// wrong password both return ErrInvalidCredentials so the caller cannot
// probe which emails are registered.
func (s *userService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// FindByID resolves a user id, typically after token verification.
func (s *userService) FindByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ParseDate parses a date-of-birth string, trying ISO first and the
// MM-DD-YYYY fallback second.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, apperrors.ErrInvalidDate
}
