package profile

import (
	"context"
	"testing"

	"medcrew/models"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormsService() *DefaultProfileService {
	client, _ := redismock.NewClientMock()
	return &DefaultProfileService{
		Repo: &fakeProfileRepo{}, Store: &fakeDocumentStore{},
		Documents: client, Notifier: &recordingNotifier{},
	}
}

func TestSavePersonalInfo(t *testing.T) {
	svc := newFormsService()

	_, err := svc.SavePersonalInfo(context.Background(), "", models.PersonalInfo{FullName: "Ana"})
	var preErr PreconditionError
	assert.ErrorAs(t, err, &preErr)

	_, err = svc.SavePersonalInfo(context.Background(), "acct-1", models.PersonalInfo{})
	var validationErr ValidationError
	assert.ErrorAs(t, err, &validationErr)

	id, err := svc.SavePersonalInfo(context.Background(), "acct-1", models.PersonalInfo{FullName: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "rec-personal", id)
}

func TestSaveProfessionalInfoRequiresCRM(t *testing.T) {
	svc := newFormsService()

	_, err := svc.SaveProfessionalInfo(context.Background(), "acct-1", models.ProfessionalInfo{})
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "crm", validationErr.Field)

	id, err := svc.SaveProfessionalInfo(context.Background(), "acct-1", models.ProfessionalInfo{CRM: "CRM12345"})
	require.NoError(t, err)
	assert.Equal(t, "rec-professional", id)
}

func TestSaveFinancialInfoRequiresBankDetails(t *testing.T) {
	svc := newFormsService()

	_, err := svc.SaveFinancialInfo(context.Background(), "acct-1", models.FinancialInfo{BankName: "Banco X"})
	var validationErr ValidationError
	assert.ErrorAs(t, err, &validationErr)

	id, err := svc.SaveFinancialInfo(context.Background(), "acct-1", models.FinancialInfo{BankName: "Banco X", BankAccount: "1234-5"})
	require.NoError(t, err)
	assert.Equal(t, "rec-financial", id)
}
