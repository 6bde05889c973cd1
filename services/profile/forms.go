package profile

import (
	"context"
	"fmt"

	"medcrew/models"
)

// The three info forms are independent of the checklist state machine: each
// submit persists its own record, in any order, any number of times.

// SavePersonalInfo persists a personal info record for the account.
func (s *DefaultProfileService) SavePersonalInfo(ctx context.Context, accountID string, info models.PersonalInfo) (string, error) {
	if accountID == "" {
		return "", PreconditionError{Message: "an authenticated session is required"}
	}
	if info.FullName == "" {
		return "", ValidationError{Field: "fullName", Message: "full name is required"}
	}
	info.AccountID = accountID
	id, err := s.Repo.SavePersonalInfo(ctx, info)
	if err != nil {
		return "", fmt.Errorf("failed to save personal info: %w", err)
	}
	return id, nil
}

// SaveProfessionalInfo persists a professional info record for the account.
func (s *DefaultProfileService) SaveProfessionalInfo(ctx context.Context, accountID string, info models.ProfessionalInfo) (string, error) {
	if accountID == "" {
		return "", PreconditionError{Message: "an authenticated session is required"}
	}
	if info.CRM == "" {
		return "", ValidationError{Field: "crm", Message: "CRM is required"}
	}
	info.AccountID = accountID
	id, err := s.Repo.SaveProfessionalInfo(ctx, info)
	if err != nil {
		return "", fmt.Errorf("failed to save professional info: %w", err)
	}
	return id, nil
}

// SaveFinancialInfo persists a financial info record for the account.
func (s *DefaultProfileService) SaveFinancialInfo(ctx context.Context, accountID string, info models.FinancialInfo) (string, error) {
	if accountID == "" {
		return "", PreconditionError{Message: "an authenticated session is required"}
	}
	if info.BankName == "" || info.BankAccount == "" {
		return "", ValidationError{Field: "bankAccount", Message: "bank name and account are required"}
	}
	info.AccountID = accountID
	id, err := s.Repo.SaveFinancialInfo(ctx, info)
	if err != nil {
		return "", fmt.Errorf("failed to save financial info: %w", err)
	}
	return id, nil
}
