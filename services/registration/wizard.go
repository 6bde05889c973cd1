package registration

import (
	"context"
	"errors"
	"time"

	"medcrew/models"
	"medcrew/services/account"
	"medcrew/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fixed user-facing messages for backend registration failures. Unmapped
// errors fall back to the generic message.
const (
	msgEmailInUse      = "This email is already registered."
	msgInvalidEmail    = "The email address is invalid."
	msgWeakPassword    = "The password is too weak. Use at least 8 characters with letters and numbers."
	msgGenericRegister = "Registration failed. Please try again later."
)

// SelectRole sets the role and unconditionally moves the session to the
// details step. No validation is possible before a role exists.
func (s *DefaultRegistrationService) SelectRole(ctx context.Context, sessionID string, role models.Role) (*models.RegistrationSession, error) {
	if !role.IsValid() {
		return nil, ValidationError{Field: "role", Message: "role must be doctor or hospital"}
	}

	if sessionID != "" {
		session, err := GetRegistrationSession(ctx, s.Sessions, sessionID)
		if err != nil && !errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		if session != nil {
			if session.Step != models.RegistrationStepRoleSelect {
				return nil, ValidationError{Field: "role", Message: "role cannot change after leaving the role step; restart registration"}
			}
			session.Draft.Role = role
			session.Step = models.RegistrationStepRoleDetails
			if err := SaveRegistrationSession(ctx, s.Sessions, sessionID, *session); err != nil {
				return nil, err
			}
			return session, nil
		}
	}

	session := models.RegistrationSession{
		TempID:    uuid.New().String(),
		Step:      models.RegistrationStepRoleDetails,
		Draft:     models.RegistrationDraft{Role: role},
		CreatedAt: time.Now(),
	}
	if err := SaveRegistrationSession(ctx, s.Sessions, session.TempID, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Advance validates the role-specific identifier for the current role and
// moves the session to the credentials step. A failed validation leaves the
// session untouched.
func (s *DefaultRegistrationService) Advance(ctx context.Context, sessionID string, details models.RoleDetailsRequest) (*models.RegistrationSession, error) {
	session, err := GetRegistrationSession(ctx, s.Sessions, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.RegistrationStepRoleDetails {
		return nil, ValidationError{Message: "nothing to advance from the current step"}
	}

	switch session.Draft.Role {
	case models.RoleDoctor:
		if !utils.IsValidCRM(details.CRM) {
			return nil, ValidationError{Field: "crm", Message: "CRM must be 'CRM' followed by 4 to 6 digits"}
		}
		session.Draft.CRM = details.CRM
	case models.RoleHospital:
		if !utils.IsValidCNPJ(details.CNPJ) {
			return nil, ValidationError{Field: "cnpj", Message: "CNPJ must have the form 00.000.000/0000-00"}
		}
		session.Draft.CNPJ = details.CNPJ
	default:
		return nil, ValidationError{Field: "role", Message: "select a role before advancing"}
	}

	if details.Name != "" {
		session.Draft.Name = details.Name
	}
	session.Step = models.RegistrationStepCredentials
	if err := SaveRegistrationSession(ctx, s.Sessions, sessionID, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// Retreat moves the session one step back, floored at the role step.
func (s *DefaultRegistrationService) Retreat(ctx context.Context, sessionID string) (*models.RegistrationSession, error) {
	session, err := GetRegistrationSession(ctx, s.Sessions, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step > models.RegistrationStepRoleSelect {
		session.Step--
		if err := SaveRegistrationSession(ctx, s.Sessions, sessionID, *session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// Submit validates the credentials and performs exactly one account-creation
// call. While a call is pending, duplicate submits on the session are
// suppressed. Backend failures keep the session at the credentials step so
// the user can correct and retry.
func (s *DefaultRegistrationService) Submit(ctx context.Context, sessionID string, creds models.CredentialsRequest) (*models.AuthResponse, error) {
	session, err := GetRegistrationSession(ctx, s.Sessions, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.RegistrationStepCredentials {
		return nil, ValidationError{Message: "complete the previous steps before submitting"}
	}
	if !session.Draft.Role.IsValid() {
		return nil, ValidationError{Field: "role", Message: "select a role before submitting"}
	}
	if creds.Password != creds.ConfirmPassword {
		return nil, ValidationError{Field: "confirmPassword", Message: "passwords do not match"}
	}

	acquired, err := acquireSubmitLock(ctx, s.Sessions, sessionID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrSubmitInFlight
	}
	defer releaseSubmitLock(ctx, s.Sessions, sessionID)

	name := creds.Name
	if name == "" {
		name = session.Draft.Name
	}

	resp, err := s.Accounts.Register(account.RegisterInput{
		Name:     name,
		Email:    creds.Email,
		Password: creds.Password,
		Role:     session.Draft.Role,
		CRM:      session.Draft.CRM,
		CNPJ:     session.Draft.CNPJ,
	})
	if err != nil {
		utils.GetLogger().Warn("Submit: account creation failed",
			zap.String("sessionId", sessionID), zap.Error(err))
		return nil, ExternalServiceError{Message: mapRegisterError(err), Err: err}
	}

	// Registration complete: the session is destroyed, the caller navigates on.
	if err := DeleteRegistrationSession(ctx, s.Sessions, sessionID); err != nil {
		utils.GetLogger().Warn("Submit: failed to delete registration session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	s.Notifier.Notify(ctx, resp.ID, models.Notification{
		Title:       "Welcome to MedCrew",
		Description: "Your account was created successfully.",
		Severity:    models.SeveritySuccess,
	})
	return resp, nil
}

func mapRegisterError(err error) string {
	switch {
	case errors.Is(err, account.ErrEmailInUse):
		return msgEmailInUse
	case errors.Is(err, account.ErrInvalidEmail):
		return msgInvalidEmail
	case errors.Is(err, account.ErrWeakPassword):
		return msgWeakPassword
	default:
		return msgGenericRegister
	}
}
