package models

import "time"

// PersonalInfo is the personal details form, submitted independently of the
// document checklist.
type PersonalInfo struct {
	ID          string    `bson:"id" json:"id"`
	AccountID   string    `bson:"accountId" json:"accountId"`
	FullName    string    `bson:"fullName" json:"fullName"`
	BirthDate   string    `bson:"birthDate" json:"birthDate"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	Address     string    `bson:"address" json:"address"`
	City        string    `bson:"city" json:"city"`
	State       string    `bson:"state" json:"state"`
	ZipCode     string    `bson:"zipCode" json:"zipCode"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProfessionalInfo is the professional details form.
type ProfessionalInfo struct {
	ID             string    `bson:"id" json:"id"`
	AccountID      string    `bson:"accountId" json:"accountId"`
	CRM            string    `bson:"crm" json:"crm"`
	Specialty      string    `bson:"specialty" json:"specialty"`
	GraduationYear int       `bson:"graduationYear" json:"graduationYear"`
	Institution    string    `bson:"institution" json:"institution"`
	Experience     string    `bson:"experience,omitempty" json:"experience,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FinancialInfo is the payout details form.
type FinancialInfo struct {
	ID          string    `bson:"id" json:"id"`
	AccountID   string    `bson:"accountId" json:"accountId"`
	BankName    string    `bson:"bankName" json:"bankName"`
	BankBranch  string    `bson:"bankBranch" json:"bankBranch"`
	BankAccount string    `bson:"bankAccount" json:"bankAccount"`
	AccountType string    `bson:"accountType" json:"accountType"`
	PixKey      string    `bson:"pixKey,omitempty" json:"pixKey,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
