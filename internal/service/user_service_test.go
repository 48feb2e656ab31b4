package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		Password:     "secret123",
		DateOfBirth:  "1990-05-20",
		Gender:       "Female",
		PhoneNumbers: []string{"555-1111", "555-2222"},
		Address:      "12 Main Street",
	}
}

func TestUserService_Register(t *testing.T) {
	t.Run("successful registration hashes password and encodes phones", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo)
		user, err := svc.Register(context.Background(), validRegisterInput())

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret124")))
		assert.Equal(t, []string{"555-1111", "555-2222"}, user.PhoneNumberList())
		assert.Equal(t, "1990-05-20", user.DateOfBirth.Format(model.DateOnly))
		mockRepo.AssertExpectations(t)
	})

	t.Run("email is normalized and uniqueness is case-insensitive", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		// Lookup happens on the normalized form regardless of input casing.
		mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").
			Return(&model.User{Email: "jane@example.com"}, nil)

		svc := NewUserService(mockRepo)
		input := validRegisterInput()
		input.Email = "  Jane@Example.COM "

		user, err := svc.Register(context.Background(), input)
		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		assert.Nil(t, user)
		mockRepo.AssertExpectations(t)
	})

	t.Run("date fallback accepts MM-DD-YYYY", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo)
		input := validRegisterInput()
		input.DateOfBirth = "05-20-1990"

		user, err := svc.Register(context.Background(), input)
		assert.NoError(t, err)
		assert.Equal(t, "1990-05-20", user.DateOfBirth.Format(model.DateOnly))
	})

	t.Run("validation failures in order", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*RegisterInput)
			wantErr error
		}{
			{
				name:   "missing first name",
				mutate: func(in *RegisterInput) { in.FirstName = "" },
			},
			{
				name:   "missing address",
				mutate: func(in *RegisterInput) { in.Address = "  " },
			},
			{
				name:   "invalid email format",
				mutate: func(in *RegisterInput) { in.Email = "not-an-email" },
			},
			{
				name:   "confirm password mismatch",
				mutate: func(in *RegisterInput) { in.ConfirmPassword = "different" },
			},
			{
				name:    "unparseable date",
				mutate:  func(in *RegisterInput) { in.DateOfBirth = "20/05/1990" },
				wantErr: apperrors.ErrInvalidDate,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockRepo := new(MockUserRepository)
				mockRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound).Maybe()

				svc := NewUserService(mockRepo)
				input := validRegisterInput()
				tt.mutate(&input)

				user, err := svc.Register(context.Background(), input)
				assert.Error(t, err)
				assert.Nil(t, user)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					var validationErr *apperrors.ValidationError
					assert.ErrorAs(t, err, &validationErr)
				}
				// Create must never be reached on a validation failure.
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestUserService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcryptCost)
	stored := &model.User{ID: 5, Email: "jane@example.com", PasswordHash: string(hashed)}

	t.Run("successful login", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(stored, nil)

		svc := NewUserService(mockRepo)
		user, err := svc.Login(context.Background(), "Jane@Example.com", "secret123")

		assert.NoError(t, err)
		assert.Equal(t, uint(5), user.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "nope@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(stored, nil)

		svc := NewUserService(mockRepo)

		_, errUnknown := svc.Login(context.Background(), "nope@example.com", "anything")
		_, errWrongPass := svc.Login(context.Background(), "jane@example.com", "wrong-password")

		assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})
}

func TestUserService_FindByID(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
	mockRepo.On("FindByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo)

	user, err := svc.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	_, err = svc.FindByID(context.Background(), 2)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
