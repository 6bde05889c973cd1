// models/account.go
package models

import "time"

// Role distinguishes the two kinds of accounts on the platform.
type Role string

const (
	RoleDoctor   Role = "doctor"
	RoleHospital Role = "hospital"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleDoctor || r == RoleHospital
}

// Account represents a registered platform account (a doctor or a hospital).
type Account struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	CRM          string    `bson:"crm,omitempty" json:"crm,omitempty"`
	CNPJ         string    `bson:"cnpj,omitempty" json:"cnpj,omitempty"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
