package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"medcrew/models"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocumentStore struct {
	uploads []string
	failKey string
	urlErr  error
	mu      sync.Mutex
}

func (f *fakeDocumentStore) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKey != "" && path == f.failKey {
		return "", errors.New("upload rejected")
	}
	f.uploads = append(f.uploads, path)
	return path, nil
}

func (f *fakeDocumentStore) Delete(ctx context.Context, objectID string) error { return nil }

func (f *fakeDocumentStore) GetRetrievalURL(ctx context.Context, objectID string, expires time.Duration) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return "https://files.example.com/" + objectID, nil
}

type fakeProfileRepo struct {
	documentRecords []models.ProfileDocumentRecord
	saveErr         error
}

func (f *fakeProfileRepo) SavePersonalInfo(ctx context.Context, info models.PersonalInfo) (string, error) {
	return "rec-personal", nil
}
func (f *fakeProfileRepo) SaveProfessionalInfo(ctx context.Context, info models.ProfessionalInfo) (string, error) {
	return "rec-professional", nil
}
func (f *fakeProfileRepo) SaveFinancialInfo(ctx context.Context, info models.FinancialInfo) (string, error) {
	return "rec-financial", nil
}
func (f *fakeProfileRepo) SaveDocumentRecord(ctx context.Context, record models.ProfileDocumentRecord) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.documentRecords = append(f.documentRecords, record)
	return "rec-docs", nil
}
func (f *fakeProfileRepo) GetDocumentRecord(ctx context.Context, accountID string) (*models.ProfileDocumentRecord, error) {
	if len(f.documentRecords) == 0 {
		return nil, nil
	}
	return &f.documentRecords[len(f.documentRecords)-1], nil
}

type recordingNotifier struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (r *recordingNotifier) Notify(ctx context.Context, accountID string, n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recordingNotifier) last(t *testing.T) models.Notification {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.notifications)
	return r.notifications[len(r.notifications)-1]
}

func pdfFile(name string) *models.DocumentFile {
	return &models.DocumentFile{
		Name:        name,
		Size:        2048,
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 test"),
	}
}

// completeRequiredSet stages a file in every personal and professional slot.
func completeRequiredSet() models.DocumentSet {
	set := models.DocumentSet{}
	for _, key := range models.PersonalDocuments {
		set[key] = pdfFile(string(key) + ".pdf")
	}
	for _, key := range models.ProfessionalDocuments {
		set[key] = pdfFile(string(key) + ".pdf")
	}
	return set
}

func setJSON(t *testing.T, set models.DocumentSet) string {
	t.Helper()
	data, err := json.Marshal(set)
	require.NoError(t, err)
	return string(data)
}

func TestSubmitRequiresAuthenticatedSession(t *testing.T) {
	client, _ := redismock.NewClientMock()
	svc := &DefaultProfileService{Repo: &fakeProfileRepo{}, Store: &fakeDocumentStore{}, Documents: client, Notifier: &recordingNotifier{}}

	err := svc.Submit(context.Background(), "")
	var preErr PreconditionError
	assert.ErrorAs(t, err, &preErr)
}

func TestSubmitRejectsIncompleteRequiredGroups(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := &fakeDocumentStore{}
	svc := &DefaultProfileService{Repo: &fakeProfileRepo{}, Store: store, Documents: client, Notifier: &recordingNotifier{}}

	set := completeRequiredSet()
	delete(set, models.DocCRM)
	mock.ExpectGet(DocumentSetPrefix + "acct-1").SetVal(setJSON(t, set))

	err := svc.Submit(context.Background(), "acct-1")
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, string(models.DocCRM), validationErr.Field)
	assert.Empty(t, store.uploads, "no upload may start before the set is complete")
}

func TestSubmitUploadFailureKeepsStagedSet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := &fakeDocumentStore{failKey: "profiles/acct-1/crm"}
	repo := &fakeProfileRepo{}
	notifier := &recordingNotifier{}
	svc := &DefaultProfileService{Repo: repo, Store: store, Documents: client, Notifier: notifier}

	mock.ExpectGet(DocumentSetPrefix + "acct-1").SetVal(setJSON(t, completeRequiredSet()))
	mock.ExpectSetNX(submitLockPrefix+"acct-1", "1", submitLockTTL).SetVal(true)
	mock.ExpectDel(submitLockPrefix + "acct-1").SetVal(1)

	err := svc.Submit(context.Background(), "acct-1")
	var partialErr PartialFailureError
	require.ErrorAs(t, err, &partialErr)

	assert.Empty(t, repo.documentRecords, "no record may exist after a failed submission")
	assert.Equal(t, models.SeverityError, notifier.last(t).Severity)
	// No Del expectation was set: the staged set must not be cleared.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitRecordFailureKeepsStagedSet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := &fakeProfileRepo{saveErr: errors.New("write timeout")}
	notifier := &recordingNotifier{}
	svc := &DefaultProfileService{Repo: repo, Store: &fakeDocumentStore{}, Documents: client, Notifier: notifier}

	mock.ExpectGet(DocumentSetPrefix + "acct-1").SetVal(setJSON(t, completeRequiredSet()))
	mock.ExpectSetNX(submitLockPrefix+"acct-1", "1", submitLockTTL).SetVal(true)
	mock.ExpectDel(submitLockPrefix + "acct-1").SetVal(1)

	err := svc.Submit(context.Background(), "acct-1")
	var partialErr PartialFailureError
	require.ErrorAs(t, err, &partialErr)
	assert.Empty(t, repo.documentRecords)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitSuccessClearsStagedSet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := &fakeDocumentStore{}
	repo := &fakeProfileRepo{}
	notifier := &recordingNotifier{}
	svc := &DefaultProfileService{Repo: repo, Store: store, Documents: client, Notifier: notifier}

	set := completeRequiredSet()
	set[models.DocRQE] = pdfFile("rqe.pdf")
	mock.ExpectGet(DocumentSetPrefix + "acct-1").SetVal(setJSON(t, set))
	mock.ExpectSetNX(submitLockPrefix+"acct-1", "1", submitLockTTL).SetVal(true)
	mock.ExpectDel(DocumentSetPrefix + "acct-1").SetVal(1)
	mock.Regexp().ExpectSet(checklistStepPrefix+"acct-1", `^0$`, checklistStepTTL).SetVal("OK")
	mock.ExpectDel(submitLockPrefix + "acct-1").SetVal(1)

	err := svc.Submit(context.Background(), "acct-1")
	require.NoError(t, err)

	require.Len(t, repo.documentRecords, 1)
	record := repo.documentRecords[0]
	assert.Equal(t, "acct-1", record.AccountID)
	assert.Len(t, record.URLs, len(set), "one retrieval URL per staged slot")
	for _, key := range models.PersonalDocuments {
		assert.Contains(t, record.URLs, string(key))
	}
	assert.Contains(t, record.URLs, string(models.DocRQE), "optional specialist documents are included when staged")
	assert.Equal(t, models.SeveritySuccess, notifier.last(t).Severity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitUploadsInSlotOrder(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := &fakeDocumentStore{}
	svc := &DefaultProfileService{Repo: &fakeProfileRepo{}, Store: store, Documents: client, Notifier: &recordingNotifier{}}

	mock.ExpectGet(DocumentSetPrefix + "acct-1").SetVal(setJSON(t, completeRequiredSet()))
	mock.ExpectSetNX(submitLockPrefix+"acct-1", "1", submitLockTTL).SetVal(true)
	mock.ExpectDel(DocumentSetPrefix + "acct-1").SetVal(1)
	mock.Regexp().ExpectSet(checklistStepPrefix+"acct-1", `^0$`, checklistStepTTL).SetVal("OK")
	mock.ExpectDel(submitLockPrefix + "acct-1").SetVal(1)

	require.NoError(t, svc.Submit(context.Background(), "acct-1"))

	var want []string
	for _, key := range models.AllDocumentKeys() {
		if models.GroupRequired(groupOf(key)) {
			want = append(want, fmt.Sprintf("profiles/acct-1/%s", key))
		}
	}
	assert.Equal(t, want, store.uploads)
}

func groupOf(key models.DocumentKey) models.DocumentGroup {
	for _, k := range models.PersonalDocuments {
		if k == key {
			return models.GroupPersonal
		}
	}
	for _, k := range models.ProfessionalDocuments {
		if k == key {
			return models.GroupProfessional
		}
	}
	return models.GroupSpecialist
}

func TestSubmitSuppressedWhileInFlight(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := &fakeDocumentStore{}
	repo := &fakeProfileRepo{}
	svc := &DefaultProfileService{Repo: repo, Store: store, Documents: client, Notifier: &recordingNotifier{}}

	// A second submit arrives while the first still holds the guard: no
	// upload starts and no second aggregate record is written.
	mock.ExpectGet(DocumentSetPrefix + "acct-1").SetVal(setJSON(t, completeRequiredSet()))
	mock.ExpectSetNX(submitLockPrefix+"acct-1", "1", submitLockTTL).SetVal(false)

	err := svc.Submit(context.Background(), "acct-1")
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Empty(t, store.uploads)
	assert.Empty(t, repo.documentRecords)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinishEarlySuppressedWhileInFlight(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := &fakeProfileRepo{}
	svc := &DefaultProfileService{Repo: repo, Store: &fakeDocumentStore{}, Documents: client, Notifier: &recordingNotifier{}}

	payload := setJSON(t, completeRequiredSet())
	mock.ExpectGet(DocumentSetPrefix + "acct-1").SetVal(payload)
	mock.ExpectGet(DocumentSetPrefix + "acct-1").SetVal(payload)
	mock.ExpectSetNX(submitLockPrefix+"acct-1", "1", submitLockTTL).SetVal(false)

	err := svc.FinishEarly(context.Background(), "acct-1")
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Empty(t, repo.documentRecords)
}

func TestGetDocumentRecord(t *testing.T) {
	client, _ := redismock.NewClientMock()
	repo := &fakeProfileRepo{}
	svc := &DefaultProfileService{Repo: repo, Store: &fakeDocumentStore{}, Documents: client, Notifier: &recordingNotifier{}}

	_, err := svc.GetDocumentRecord(context.Background(), "")
	var preErr PreconditionError
	assert.ErrorAs(t, err, &preErr)

	record, err := svc.GetDocumentRecord(context.Background(), "acct-1")
	require.NoError(t, err)
	assert.Nil(t, record, "nothing submitted yet")

	repo.documentRecords = append(repo.documentRecords, models.ProfileDocumentRecord{
		AccountID: "acct-1",
		URLs:      map[string]string{"rg": "https://files.example.com/profiles/acct-1/rg"},
	})
	record, err = svc.GetDocumentRecord(context.Background(), "acct-1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "acct-1", record.AccountID)
}

func TestFinishEarlyRequiresBothRequiredGroups(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := &DefaultProfileService{Repo: &fakeProfileRepo{}, Store: &fakeDocumentStore{}, Documents: client, Notifier: &recordingNotifier{}}

	set := models.DocumentSet{}
	for _, key := range models.PersonalDocuments {
		set[key] = pdfFile(string(key) + ".pdf")
	}
	mock.ExpectGet(DocumentSetPrefix + "acct-1").SetVal(setJSON(t, set))

	err := svc.FinishEarly(context.Background(), "acct-1")
	var validationErr ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestFinishEarlySubmitsWithoutSpecialistDocuments(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := &fakeProfileRepo{}
	svc := &DefaultProfileService{Repo: repo, Store: &fakeDocumentStore{}, Documents: client, Notifier: &recordingNotifier{}}

	payload := setJSON(t, completeRequiredSet())
	mock.ExpectGet(DocumentSetPrefix + "acct-1").SetVal(payload)
	mock.ExpectGet(DocumentSetPrefix + "acct-1").SetVal(payload)
	mock.ExpectSetNX(submitLockPrefix+"acct-1", "1", submitLockTTL).SetVal(true)
	mock.ExpectDel(DocumentSetPrefix + "acct-1").SetVal(1)
	mock.Regexp().ExpectSet(checklistStepPrefix+"acct-1", `^0$`, checklistStepTTL).SetVal("OK")
	mock.ExpectDel(submitLockPrefix + "acct-1").SetVal(1)

	require.NoError(t, svc.FinishEarly(context.Background(), "acct-1"))
	assert.Len(t, repo.documentRecords, 1)
}
