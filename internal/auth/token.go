package auth

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "contactbook/internal/errors"
)

// TokenService issues and verifies bearer tokens identifying a user. Two
// implementations exist: signed JWT tokens with expiry, and the opaque
// debug tokens used by the simplified endpoint family.
type TokenService interface {
	Issue(userID uint) (string, error)
	Verify(token string) (uint, error)
}

const debugTokenPrefix = "test_token_"

// DebugTokenService implements the trivial "test_token_{id}" scheme.
//
// The user id is embedded in the token with no integrity protection, so any
// client can forge a token for any id. This is a known, accepted limitation
// of the scheme; it exists for low-friction testing and must never be the
// only scheme in a security-relevant deployment.
type DebugTokenService struct{}

// NewDebugTokenService creates the debug token strategy.
func NewDebugTokenService() *DebugTokenService {
	return &DebugTokenService{}
}

// Issue formats the opaque token for a user id. Never fails.
func (s *DebugTokenService) Issue(userID uint) (string, error) {
	return fmt.Sprintf("%s%d", debugTokenPrefix, userID), nil
}

// Verify parses the embedded user id. There is no expiry.
func (s *DebugTokenService) Verify(token string) (uint, error) {
	if !strings.HasPrefix(token, debugTokenPrefix) {
		return 0, apperrors.ErrTokenInvalid
	}
	id, err := strconv.ParseUint(strings.TrimPrefix(token, debugTokenPrefix), 10, 32)
	if err != nil {
		return 0, apperrors.ErrTokenInvalid
	}
	return uint(id), nil
}
