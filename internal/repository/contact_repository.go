package repository

import (
	"context"

	"gorm.io/gorm"

	"contactbook/internal/model"
)

// ContactRepository defines contact persistence operations. Every query is
// scoped to the owning user id so ownership is enforced at the storage
// boundary rather than in handler code.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, contact *model.Contact) error
	FindByID(ctx context.Context, userID, contactID uint) (*model.Contact, error)
	List(ctx context.Context, userID uint, search string, offset, limit int) ([]model.Contact, int64, error)
	Delete(ctx context.Context, userID, contactID uint) error
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) Update(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

func (r *contactRepository) FindByID(ctx context.Context, userID, contactID uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", contactID, userID).
		First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// List returns one page of the user's contacts ordered by (first_name,
// last_name) plus the total match count. A non-empty search term matches
// as a case-insensitive substring on first name, last name, company or
// address.
func (r *contactRepository) List(ctx context.Context, userID uint, search string, offset, limit int) ([]model.Contact, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Contact{}).Where("user_id = ?", userID)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR company LIKE ? OR address LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []model.Contact
	if err := query.
		Order("first_name ASC, last_name ASC").
		Offset(offset).
		Limit(limit).
		Find(&contacts).Error; err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// Delete removes the contact permanently. Reports gorm.ErrRecordNotFound
// when nothing matched, which covers both missing and foreign-owned rows.
func (r *contactRepository) Delete(ctx context.Context, userID, contactID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", contactID, userID).
		Delete(&model.Contact{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
