package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a validated access token.
// The owner id is the only value this service consumes from the identity
// system; issuance and refresh live outside this application.
type TokenClaims struct {
	OwnerID   uuid.UUID
	ExpiresAt time.Time
}

// TokenService defines the interface for access-token validation.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
