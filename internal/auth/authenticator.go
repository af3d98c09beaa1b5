package auth

import (
	"context"

	"github.com/splitbook/splitbook/internal/models"
)

// Authenticator abstracts account creation and credential checks so the
// service layer never sees how a credential is stored or compared. The
// only implementation today is password based; the seam leaves room for
// OAuth or passkeys without touching callers.
type Authenticator interface {
	// Register creates an account. What the credential means is up to
	// the implementation.
	Register(ctx context.Context, email, name, credential string) (*models.User, error)

	// Authenticate returns the user when the credential matches.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential rejects credentials the implementation will
	// not accept, before any account state is touched.
	ValidateCredential(credential string) error
}
