package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContact_PhoneNumbersRoundTrip(t *testing.T) {
	var contact Contact

	numbers := []string{"555-1111", "555-2222"}
	assert.NoError(t, contact.SetPhoneNumbers(numbers))
	assert.Equal(t, numbers, contact.PhoneNumberList())

	// Nil is stored as an empty list, not null.
	assert.NoError(t, contact.SetPhoneNumbers(nil))
	assert.Equal(t, []string{}, contact.PhoneNumberList())
}

func TestUser_PhoneNumbersRoundTrip(t *testing.T) {
	var user User

	numbers := []string{"555-0001", "555-0002", "555-0003"}
	assert.NoError(t, user.SetPhoneNumbers(numbers))
	assert.Equal(t, numbers, user.PhoneNumberList())
}

func TestUser_ProjectionExcludesSecrets(t *testing.T) {
	user := User{
		ID:           1,
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.SetPhoneNumbers([]string{"555-0100"}))

	projection := user.Projection()
	assert.Equal(t, uint(1), projection.ID)
	assert.Equal(t, []string{"555-0100"}, projection.PhoneNumbers)

	payload, err := json.Marshal(projection)
	assert.NoError(t, err)
	assert.NotContains(t, string(payload), user.PasswordHash)
	assert.NotContains(t, string(payload), "password")
}
