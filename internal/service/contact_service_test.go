package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
)

// MockContactRepository is a mock implementation of ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) FindByID(ctx context.Context, userID, contactID uint) (*model.Contact, error) {
	args := m.Called(ctx, userID, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context, userID uint, search string, offset, limit int) ([]model.Contact, int64, error) {
	args := m.Called(ctx, userID, search, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Contact), args.Get(1).(int64), args.Error(2)
}

func (m *MockContactRepository) Delete(ctx context.Context, userID, contactID uint) error {
	args := m.Called(ctx, userID, contactID)
	return args.Error(0)
}

func TestContactService_Create(t *testing.T) {
	t.Run("successful create defaults phones to empty list", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)

		svc := NewContactService(mockRepo)
		contact, err := svc.Create(context.Background(), 1, ContactInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Company:   "Analytical Engines",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(1), contact.UserID)
		assert.Equal(t, []string{}, contact.PhoneNumberList())
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing names are rejected before persistence", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		svc := NewContactService(mockRepo)

		_, err := svc.Create(context.Background(), 1, ContactInput{LastName: "Lovelace"})
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)

		_, err = svc.Create(context.Background(), 1, ContactInput{FirstName: "Ada"})
		assert.ErrorAs(t, err, &validationErr)

		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestContactService_List(t *testing.T) {
	t.Run("pagination metadata", func(t *testing.T) {
		// 3 contacts at 2 per page: page 1 has 2 items, page 2 has 1,
		// page 3 is empty but not an error.
		all := []model.Contact{
			{ID: 1, FirstName: "Ada"},
			{ID: 2, FirstName: "Alan"},
			{ID: 3, FirstName: "Grace"},
		}

		mockRepo := new(MockContactRepository)
		mockRepo.On("List", mock.Anything, uint(1), "", 0, 2).Return(all[:2], int64(3), nil)
		mockRepo.On("List", mock.Anything, uint(1), "", 2, 2).Return(all[2:], int64(3), nil)
		mockRepo.On("List", mock.Anything, uint(1), "", 4, 2).Return([]model.Contact{}, int64(3), nil)

		svc := NewContactService(mockRepo)

		page1, err := svc.List(context.Background(), 1, 1, 2, "")
		assert.NoError(t, err)
		assert.Len(t, page1.Contacts, 2)
		assert.Equal(t, int64(3), page1.Total)
		assert.Equal(t, 2, page1.Pages)
		assert.Equal(t, 1, page1.Page)

		page2, err := svc.List(context.Background(), 1, 2, 2, "")
		assert.NoError(t, err)
		assert.Len(t, page2.Contacts, 1)

		page3, err := svc.List(context.Background(), 1, 3, 2, "")
		assert.NoError(t, err)
		assert.Empty(t, page3.Contacts)
		assert.Equal(t, 2, page3.Pages)
	})

	t.Run("per_page is clamped to 50 and page defaults to 1", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockRepo.On("List", mock.Anything, uint(1), "", 0, 50).Return([]model.Contact{}, int64(0), nil)
		mockRepo.On("List", mock.Anything, uint(1), "", 0, 10).Return([]model.Contact{}, int64(0), nil)

		svc := NewContactService(mockRepo)

		result, err := svc.List(context.Background(), 1, 0, 500, "")
		assert.NoError(t, err)
		assert.Equal(t, 50, result.PerPage)
		assert.Equal(t, 1, result.Page)

		result, err = svc.List(context.Background(), 1, 0, 0, "")
		assert.NoError(t, err)
		assert.Equal(t, 10, result.PerPage)
		mockRepo.AssertExpectations(t)
	})

	t.Run("search term reaches the repository", func(t *testing.T) {
		match := []model.Contact{{ID: 2, FirstName: "Grace", Company: "US Navy"}}

		mockRepo := new(MockContactRepository)
		mockRepo.On("List", mock.Anything, uint(1), "navy", 0, 10).Return(match, int64(1), nil)

		svc := NewContactService(mockRepo)
		result, err := svc.List(context.Background(), 1, 1, 10, "navy")
		assert.NoError(t, err)
		assert.Len(t, result.Contacts, 1)
		assert.Equal(t, "Grace", result.Contacts[0].FirstName)
	})
}

func TestContactService_Ownership(t *testing.T) {
	// Contact 10 belongs to user 1. User 2 must see NotFound on every
	// operation, identical to a contact that does not exist at all.
	mockRepo := new(MockContactRepository)
	mockRepo.On("FindByID", mock.Anything, uint(2), uint(10)).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Delete", mock.Anything, uint(2), uint(10)).Return(gorm.ErrRecordNotFound)

	svc := NewContactService(mockRepo)
	ctx := context.Background()

	_, err := svc.Get(ctx, 2, 10)
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)

	_, err = svc.Update(ctx, 2, 10, ContactInput{FirstName: "New", LastName: "Name"})
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)

	err = svc.Delete(ctx, 2, 10)
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
}

func TestContactService_Update(t *testing.T) {
	stored := func() *model.Contact {
		contact := &model.Contact{ID: 10, UserID: 1, FirstName: "Ada", LastName: "Lovelace"}
		_ = contact.SetPhoneNumbers([]string{"555-0101"})
		return contact
	}

	t.Run("phones kept when not provided", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1), uint(10)).Return(stored(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)

		svc := NewContactService(mockRepo)
		updated, err := svc.Update(context.Background(), 1, 10, ContactInput{
			FirstName: "Augusta",
			LastName:  "King",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Augusta", updated.FirstName)
		assert.Equal(t, []string{"555-0101"}, updated.PhoneNumberList())
	})

	t.Run("phones replaced when provided", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1), uint(10)).Return(stored(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)

		svc := NewContactService(mockRepo)
		updated, err := svc.Update(context.Background(), 1, 10, ContactInput{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			PhoneNumbers: []string{"555-0202", "555-0303"},
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"555-0202", "555-0303"}, updated.PhoneNumberList())
	})
}
