package usecase

import (
	"github.com/google/uuid"
)

// TokenValidator resolves an access token into the acting user's id.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}
