package ports

import (
	"context"

	"github.com/google/uuid"
)

// AuthUser is the identity the external auth service reports for a token.
type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// IdentityService is the external auth provider. Token issuance and
// validation are fully delegated to it; the backend only carries the
// token in an http-only cookie.
type IdentityService interface {
	SignUp(ctx context.Context, email, password string) (*AuthUser, error)
	SignIn(ctx context.Context, email, password string) (token string, user *AuthUser, err error)
	SignOut(ctx context.Context, token string) error
	SendPasswordReset(ctx context.Context, email string) error
	GetUser(ctx context.Context, token string) (*AuthUser, error)
}
