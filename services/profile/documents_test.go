package profile

import (
	"context"
	"testing"

	"medcrew/models"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDocumentFile(t *testing.T) {
	// Smallest valid PNG header, enough for content sniffing.
	pngHeader := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	cases := []struct {
		name    string
		file    models.DocumentFile
		wantErr string
	}{
		{
			name: "pdf under the limit",
			file: models.DocumentFile{Name: "rg.pdf", Size: 2 * 1024 * 1024, ContentType: "application/pdf", Data: []byte("%PDF-1.4")},
		},
		{
			name: "png under the limit",
			file: models.DocumentFile{Name: "photo.png", Size: 2 * 1024 * 1024, ContentType: "image/png", Data: pngHeader},
		},
		{
			name:    "pdf over the limit",
			file:    models.DocumentFile{Name: "big.pdf", Size: 6 * 1024 * 1024, ContentType: "application/pdf", Data: []byte("%PDF-1.4")},
			wantErr: "file exceeds the 5 MB limit",
		},
		{
			name:    "plain text rejected",
			file:    models.DocumentFile{Name: "notes.txt", Size: 1024, ContentType: "text/plain", Data: []byte("hello")},
			wantErr: "only PDF, JPEG and PNG files are accepted",
		},
		{
			name: "missing content type sniffed from data",
			file: models.DocumentFile{Name: "photo", Size: 1024, Data: pngHeader},
		},
		{
			name:    "oversize and wrong type reports size first",
			file:    models.DocumentFile{Name: "big.txt", Size: 6 * 1024 * 1024, ContentType: "text/plain", Data: []byte("hello")},
			wantErr: "file exceeds the 5 MB limit",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckDocumentFile(tc.file)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantErr, validationErr.Message)
		})
	}
}

func TestSetDocumentRejectedFileNeverEntersSet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := &DefaultProfileService{Repo: &fakeProfileRepo{}, Store: &fakeDocumentStore{}, Documents: client, Notifier: &recordingNotifier{}}

	file := models.DocumentFile{Name: "big.pdf", Size: 6 * 1024 * 1024, ContentType: "application/pdf"}
	err := svc.SetDocument(context.Background(), "acct-1", models.DocRG, file)

	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
	// No Redis command was expected: the set was never touched.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDocumentRejectsUnknownSlot(t *testing.T) {
	client, _ := redismock.NewClientMock()
	svc := &DefaultProfileService{Repo: &fakeProfileRepo{}, Store: &fakeDocumentStore{}, Documents: client, Notifier: &recordingNotifier{}}

	err := svc.SetDocument(context.Background(), "acct-1", models.DocumentKey("passport"), *pdfFile("passport.pdf"))
	var validationErr ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestSetDocumentStagesFile(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := &DefaultProfileService{Repo: &fakeProfileRepo{}, Store: &fakeDocumentStore{}, Documents: client, Notifier: &recordingNotifier{}}

	mock.ExpectGet(DocumentSetPrefix + "acct-1").RedisNil()
	mock.Regexp().ExpectSet(DocumentSetPrefix+"acct-1", `.*rg\.pdf.*`, 0).SetVal("OK")

	err := svc.SetDocument(context.Background(), "acct-1", models.DocRG, *pdfFile("rg.pdf"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDocumentOverwritesPriorSelection(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := &DefaultProfileService{Repo: &fakeProfileRepo{}, Store: &fakeDocumentStore{}, Documents: client, Notifier: &recordingNotifier{}}

	existing := models.DocumentSet{models.DocRG: pdfFile("old-rg.pdf")}
	mock.ExpectGet(DocumentSetPrefix + "acct-1").SetVal(setJSON(t, existing))
	mock.Regexp().ExpectSet(DocumentSetPrefix+"acct-1", `.*new-rg\.pdf.*`, 0).SetVal("OK")

	err := svc.SetDocument(context.Background(), "acct-1", models.DocRG, *pdfFile("new-rg.pdf"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type recordingScheduler struct {
	scheduled []string
}

func (r *recordingScheduler) ScheduleCompletionReminder(accountID string) error {
	r.scheduled = append(r.scheduled, accountID)
	return nil
}

func TestSetDocumentSchedulesReminderWhileIncomplete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	scheduler := &recordingScheduler{}
	svc := &DefaultProfileService{
		Repo: &fakeProfileRepo{}, Store: &fakeDocumentStore{},
		Documents: client, Notifier: &recordingNotifier{}, Reminders: scheduler,
	}

	mock.ExpectGet(DocumentSetPrefix + "acct-1").RedisNil()
	mock.Regexp().ExpectSet(DocumentSetPrefix+"acct-1", `.*`, 0).SetVal("OK")

	require.NoError(t, svc.SetDocument(context.Background(), "acct-1", models.DocRG, *pdfFile("rg.pdf")))
	assert.Equal(t, []string{"acct-1"}, scheduler.scheduled)
}

func TestGetDocumentSetStripsFileContents(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := &DefaultProfileService{Repo: &fakeProfileRepo{}, Store: &fakeDocumentStore{}, Documents: client, Notifier: &recordingNotifier{}}

	staged := models.DocumentSet{models.DocRG: pdfFile("rg.pdf")}
	mock.ExpectGet(DocumentSetPrefix + "acct-1").SetVal(setJSON(t, staged))

	set, err := svc.GetDocumentSet(context.Background(), "acct-1")
	require.NoError(t, err)
	require.NotNil(t, set[models.DocRG])
	assert.Equal(t, "rg.pdf", set[models.DocRG].Name)
	assert.Nil(t, set[models.DocRG].Data)
}
