package account

import (
	"context"
	"fmt"
	"net/mail"
	"time"
	"unicode"

	"medcrew/models"
	"medcrew/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// VerifyPasswordComplexity enforces the minimum password rules: at least 8
// characters with at least one letter and one digit.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}

// Register validates input, checks for duplicates, persists the account, and
// issues a token.
func (s *DefaultAccountService) Register(input RegisterInput) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if !input.Role.IsValid() {
		return nil, fmt.Errorf("a valid role is required")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	if err := VerifyPasswordComplexity(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmailWithProjection(input.Email, bson.M{"id": 1})
	if err != nil {
		logger.Error("Register: failed to check for existing account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	acct := models.Account{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         input.Role,
		CRM:          input.CRM,
		CNPJ:         input.CNPJ,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(&acct); err != nil {
		logger.Error("Register: failed to create account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(acct.ID, acct.Email, tokenTTL)
	if err != nil {
		logger.Error("Register: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	acct.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(&acct); err != nil {
		logger.Error("Register: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.sessions.publish(SessionEvent{Kind: SessionStarted, AccountID: acct.ID})

	return &models.AuthResponse{
		ID:        acct.ID,
		Token:     token,
		Name:      acct.Name,
		Email:     acct.Email,
		Role:      acct.Role,
		CreatedAt: acct.CreatedAt,
	}, nil
}

// Authenticate verifies credentials, stores a fresh token hash, and clears the
// auth cache entry for the account.
func (s *DefaultAccountService) Authenticate(email, password string) (*models.AuthResponse, error) {
	acct, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if acct == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(acct.ID, acct.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	acct.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(acct); err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	s.invalidateAuthCache(acct.ID)
	s.sessions.publish(SessionEvent{Kind: SessionStarted, AccountID: acct.ID})

	return &models.AuthResponse{
		ID:        acct.ID,
		Token:     token,
		Name:      acct.Name,
		Email:     acct.Email,
		Role:      acct.Role,
		CreatedAt: acct.CreatedAt,
	}, nil
}

// FetchAccount retrieves the account record behind a session.
func (s *DefaultAccountService) FetchAccount(accountID string) (*models.Account, error) {
	acct, err := s.Repo.GetByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return acct, nil
}

// RevokeToken clears the stored token hash and the auth cache entry.
func (s *DefaultAccountService) RevokeToken(accountID string) error {
	acct, err := s.Repo.GetByIDWithProjection(accountID, nil)
	if err != nil {
		return fmt.Errorf("failed to retrieve account: %w", err)
	}
	if acct == nil {
		return fmt.Errorf("account not found")
	}

	acct.TokenHash = ""
	if err := s.Repo.Update(acct); err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}

	s.invalidateAuthCache(accountID)
	s.sessions.publish(SessionEvent{Kind: SessionEnded, AccountID: accountID})
	return nil
}

// UpdateFCMToken stores the push token for an account's device.
func (s *DefaultAccountService) UpdateFCMToken(accountID, fcmToken string) error {
	acct, err := s.Repo.GetByIDWithProjection(accountID, nil)
	if err != nil {
		return fmt.Errorf("failed to retrieve account: %w", err)
	}
	if acct == nil {
		return fmt.Errorf("account not found")
	}
	acct.FCMToken = fcmToken
	return s.Repo.Update(acct)
}

func (s *DefaultAccountService) invalidateAuthCache(accountID string) {
	cacheKey := utils.AuthCachePrefix + accountID
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
		zap.L().Error("Failed to clear auth cache", zap.Error(err))
	}
}
