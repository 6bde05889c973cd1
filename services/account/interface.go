package account

import (
	accountRepo "medcrew/database/repository/account"
	"medcrew/models"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
	CRM      string
	CNPJ     string
}

// AccountService creates accounts, authenticates them, and exposes session
// state to interested components.
type AccountService interface {
	// Register creates a new account and returns an auth response with a
	// fresh token. Failure reasons surface as ErrEmailInUse, ErrInvalidEmail,
	// ErrWeakPassword, or an untyped error.
	Register(input RegisterInput) (*models.AuthResponse, error)

	// Authenticate verifies credentials and issues a token.
	Authenticate(email, password string) (*models.AuthResponse, error)

	// FetchAccount retrieves the account record behind a session.
	FetchAccount(accountID string) (*models.Account, error)

	// RevokeToken clears the stored token hash for an account.
	RevokeToken(accountID string) error

	// UpdateFCMToken stores the push token for an account's device.
	UpdateFCMToken(accountID, fcmToken string) error

	// SubscribeSessionChanges registers a callback invoked on every session
	// event. The returned handle releases the subscription; late events after
	// release are never delivered.
	SubscribeSessionChanges(fn func(SessionEvent)) (unsubscribe func())
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo     accountRepo.AccountRepository
	sessions sessionBroadcaster
}
