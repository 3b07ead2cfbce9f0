package usecase

import (
	"context"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
)

// AuthUseCase signs sessions in and out
type AuthUseCase interface {
	// Login validates the form, calls the platform and stores the credentials on session
	Login(ctx context.Context, session *entity.Session, email, password string) error

	// Signup validates the form and creates the account. It reports whether the platform
	// returned a token, in which case session is signed in.
	Signup(ctx context.Context, session *entity.Session, input entity.SignupInput) (bool, error)

	// Logout clears the credentials and the whole query cache of session
	Logout(ctx context.Context, session *entity.Session) error
}
