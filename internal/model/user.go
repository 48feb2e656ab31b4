package model

import (
	"encoding/json"
	"time"
)

// DateOnly is the wire format for date-of-birth values.
const DateOnly = "2006-01-02"

// User represents a registered account that owns contact records.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	FirstName      string    `json:"first_name" gorm:"size:100;not null"`
	LastName       string    `json:"last_name" gorm:"size:100;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	DateOfBirth    time.Time `json:"date_of_birth" gorm:"not null"`
	Gender         string    `json:"gender" gorm:"size:10;not null"`
	PhoneNumbers   string    `json:"-" gorm:"type:text;not null"` // JSON-encoded string list
	Address        string    `json:"address" gorm:"type:text;not null"`
	ProfilePicture string    `json:"profile_picture,omitempty" gorm:"size:255"`
	RegisteredOn   time.Time `json:"registered_on" gorm:"autoCreateTime"`

	Contacts []Contact `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// SetPhoneNumbers stores the list as a JSON text blob, preserving order.
func (u *User) SetPhoneNumbers(numbers []string) error {
	if numbers == nil {
		numbers = []string{}
	}
	payload, err := json.Marshal(numbers)
	if err != nil {
		return err
	}
	u.PhoneNumbers = string(payload)
	return nil
}

// PhoneNumberList decodes the stored blob back into an ordered list.
func (u *User) PhoneNumberList() []string {
	var numbers []string
	if err := json.Unmarshal([]byte(u.PhoneNumbers), &numbers); err != nil {
		return []string{}
	}
	return numbers
}

// UserProjection is the client-safe view of a user; password data is never included.
type UserProjection struct {
	ID             uint      `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	DateOfBirth    string    `json:"date_of_birth"`
	Gender         string    `json:"gender"`
	PhoneNumbers   []string  `json:"phone_numbers"`
	Address        string    `json:"address"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	RegisteredOn   time.Time `json:"registered_on"`
}

// Projection builds the serializable view of the user.
func (u *User) Projection() UserProjection {
	return UserProjection{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		DateOfBirth:    u.DateOfBirth.Format(DateOnly),
		Gender:         u.Gender,
		PhoneNumbers:   u.PhoneNumberList(),
		Address:        u.Address,
		ProfilePicture: u.ProfilePicture,
		RegisteredOn:   u.RegisteredOn,
	}
}
