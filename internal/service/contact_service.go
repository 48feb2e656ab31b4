package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
	"contactbook/internal/repository"
)

const (
	defaultPerPage = 10
	maxPerPage     = 50
)

// ContactInput carries the writable fields of a contact. A nil PhoneNumbers
// slice means "not provided": creates default to an empty list, updates keep
// the stored value.
type ContactInput struct {
	FirstName    string
	LastName     string
	Company      string
	Address      string
	PhoneNumbers []string
}

// ContactPage is one page of list results plus pagination metadata.
type ContactPage struct {
	Contacts []model.Contact
	Total    int64
	Pages    int
	Page     int
	PerPage  int
}

// ContactService is the contact store; every operation is scoped to the
// owning user, and contacts of other users behave as if they do not exist.
type ContactService interface {
	Create(ctx context.Context, userID uint, input ContactInput) (*model.Contact, error)
	List(ctx context.Context, userID uint, page, perPage int, search string) (*ContactPage, error)
	Get(ctx context.Context, userID, contactID uint) (*model.Contact, error)
	Update(ctx context.Context, userID, contactID uint, input ContactInput) (*model.Contact, error)
	Delete(ctx context.Context, userID, contactID uint) error
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService builds the contact store over a repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func validateContactInput(input ContactInput) error {
	if strings.TrimSpace(input.FirstName) == "" {
		return apperrors.NewValidationError("first_name", "is required")
	}
	if strings.TrimSpace(input.LastName) == "" {
		return apperrors.NewValidationError("last_name", "is required")
	}
	if utf8.RuneCountInString(input.FirstName) > 100 {
		return apperrors.NewValidationError("first_name", "must be at most 100 characters")
	}
	if utf8.RuneCountInString(input.LastName) > 100 {
		return apperrors.NewValidationError("last_name", "must be at most 100 characters")
	}
	return nil
}

// Create persists a new contact owned by userID.
func (s *contactService) Create(ctx context.Context, userID uint, input ContactInput) (*model.Contact, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		UserID:    userID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Company:   input.Company,
		Address:   input.Address,
	}
	if err := contact.SetPhoneNumbers(input.PhoneNumbers); err != nil {
		return nil, fmt.Errorf("encode phone numbers: %w", err)
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

// List returns the requested page of the user's contacts. Page numbering
// starts at 1, per_page is capped at 50, and a page past the end yields an
// empty result rather than an error.
func (s *contactService) List(ctx context.Context, userID uint, page, perPage int, search string) (*ContactPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	offset := (page - 1) * perPage
	contacts, total, err := s.repo.List(ctx, userID, search, offset, perPage)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))

	return &ContactPage{
		Contacts: contacts,
		Total:    total,
		Pages:    pages,
		Page:     page,
		PerPage:  perPage,
	}, nil
}

// Get fetches one contact; missing and foreign-owned look identical.
func (s *contactService) Get(ctx context.Context, userID, contactID uint) (*model.Contact, error) {
	contact, err := s.repo.FindByID(ctx, userID, contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, err
	}
	return contact, nil
}

// Update replaces names, company and address; phone numbers only when
// provided. The updated_at timestamp is refreshed on save.
func (s *contactService) Update(ctx context.Context, userID, contactID uint, input ContactInput) (*model.Contact, error) {
	contact, err := s.Get(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	contact.FirstName = input.FirstName
	contact.LastName = input.LastName
	contact.Company = input.Company
	contact.Address = input.Address
	if input.PhoneNumbers != nil {
		if err := contact.SetPhoneNumbers(input.PhoneNumbers); err != nil {
			return nil, fmt.Errorf("encode phone numbers: %w", err)
		}
	}

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return contact, nil
}

// Delete permanently removes the contact.
func (s *contactService) Delete(ctx context.Context, userID, contactID uint) error {
	if err := s.repo.Delete(ctx, userID, contactID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactNotFound
		}
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
