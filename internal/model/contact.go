package model

import (
	"encoding/json"
	"time"
)

// Contact represents a single address-book entry owned by a user.
type Contact struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	FirstName    string    `json:"first_name" gorm:"size:100;not null"`
	LastName     string    `json:"last_name" gorm:"size:100;not null"`
	Company      string    `json:"company" gorm:"size:100"`
	Address      string    `json:"address" gorm:"type:text"`
	PhoneNumbers string    `json:"-" gorm:"type:text;not null"` // JSON-encoded string list
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SetPhoneNumbers stores the list as a JSON text blob, preserving order.
func (c *Contact) SetPhoneNumbers(numbers []string) error {
	if numbers == nil {
		numbers = []string{}
	}
	payload, err := json.Marshal(numbers)
	if err != nil {
		return err
	}
	c.PhoneNumbers = string(payload)
	return nil
}

// PhoneNumberList decodes the stored blob back into an ordered list.
func (c *Contact) PhoneNumberList() []string {
	var numbers []string
	if err := json.Unmarshal([]byte(c.PhoneNumbers), &numbers); err != nil {
		return []string{}
	}
	return numbers
}

// ContactProjection is the serializable view of a contact.
type ContactProjection struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Company      string    `json:"company"`
	Address      string    `json:"address"`
	PhoneNumbers []string  `json:"phone_numbers"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Projection builds the serializable view of the contact.
func (c *Contact) Projection() ContactProjection {
	return ContactProjection{
		ID:           c.ID,
		UserID:       c.UserID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Company:      c.Company,
		Address:      c.Address,
		PhoneNumbers: c.PhoneNumberList(),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
