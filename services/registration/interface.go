package registration

import (
	"context"

	"medcrew/models"
	"medcrew/services/account"
	"medcrew/services/notification"

	"github.com/go-redis/redis/v8"
)

// RegistrationService drives the three-step registration wizard:
// role selection, role-specific details, credentials, one final submit.
type RegistrationService interface {
	// SelectRole starts a session (or restarts one still at the role step)
	// and moves it to the details step. A session that has left the role
	// step keeps its role until it is restarted.
	SelectRole(ctx context.Context, sessionID string, role models.Role) (*models.RegistrationSession, error)

	// Advance validates the role-specific identifier and moves the session
	// from the details step to the credentials step.
	Advance(ctx context.Context, sessionID string, details models.RoleDetailsRequest) (*models.RegistrationSession, error)

	// Retreat moves the session one step back. No-op at the role step.
	Retreat(ctx context.Context, sessionID string) (*models.RegistrationSession, error)

	// Submit creates the account. Exactly one register call is made per
	// submission; duplicates while one is in flight are suppressed. On
	// backend failure the session stays at the credentials step.
	Submit(ctx context.Context, sessionID string, creds models.CredentialsRequest) (*models.AuthResponse, error)
}

// DefaultRegistrationService is the production implementation.
type DefaultRegistrationService struct {
	Accounts account.AccountService
	Sessions *redis.Client
	Notifier notification.Notifier
}

// NewDefaultRegistrationService wires the wizard with its collaborators.
func NewDefaultRegistrationService(accounts account.AccountService, sessions *redis.Client, notifier notification.Notifier) *DefaultRegistrationService {
	return &DefaultRegistrationService{
		Accounts: accounts,
		Sessions: sessions,
		Notifier: notifier,
	}
}
