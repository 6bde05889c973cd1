package models

import "time"

// Registration wizard steps.
const (
	RegistrationStepRoleSelect  = 0
	RegistrationStepRoleDetails = 1
	RegistrationStepCredentials = 2
)

// RegistrationDraft holds the data collected across the registration steps.
// It lives only inside the registration session and is discarded once the
// account is created.
type RegistrationDraft struct {
	Name string `json:"name,omitempty"`
	Role Role   `json:"role,omitempty"`
	CRM  string `json:"crm,omitempty"`
	CNPJ string `json:"cnpj,omitempty"`
}

// RegistrationSession holds all transient data during multi-step registration.
// Credentials never enter the session; they are validated and consumed by the
// final submit only.
type RegistrationSession struct {
	TempID        string            `json:"tempId"`
	Step          int               `json:"step"`
	Draft         RegistrationDraft `json:"draft"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// RoleDetailsRequest carries the role-specific identifier collected at step 1.
type RoleDetailsRequest struct {
	Name string `json:"name"`
	CRM  string `json:"crm,omitempty"`
	CNPJ string `json:"cnpj,omitempty"`
}

// CredentialsRequest carries the final credentials collected at step 2.
type CredentialsRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// AuthResponse is returned after a successful registration or login.
type AuthResponse struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
