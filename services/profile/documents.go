package profile

import (
	"context"
	"fmt"

	"medcrew/models"
	"medcrew/utils"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// MaxDocumentSize is the accepted upload ceiling, 5 MiB.
const MaxDocumentSize = 5 * 1024 * 1024

var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// CheckDocumentFile enforces the upload guard: size and content type are
// independent checks with distinct messages. When no content type is
// declared, it is sniffed from the file contents.
func CheckDocumentFile(file models.DocumentFile) error {
	if file.Size > MaxDocumentSize {
		return ValidationError{Field: string(file.Name), Message: "file exceeds the 5 MB limit"}
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = mimetype.Detect(file.Data).String()
	}
	if !allowedContentTypes[contentType] {
		return ValidationError{Field: string(file.Name), Message: "only PDF, JPEG and PNG files are accepted"}
	}
	return nil
}

func knownDocumentKey(key models.DocumentKey) bool {
	for _, k := range models.AllDocumentKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// SetDocument validates the file and stages it under the given slot,
// overwriting any prior selection. Rejected files never enter the set.
func (s *DefaultProfileService) SetDocument(ctx context.Context, accountID string, key models.DocumentKey, file models.DocumentFile) error {
	if accountID == "" {
		return PreconditionError{Message: "an authenticated session is required"}
	}
	if !knownDocumentKey(key) {
		return ValidationError{Field: string(key), Message: "unknown document slot"}
	}
	if err := CheckDocumentFile(file); err != nil {
		return err
	}

	set, err := loadDocumentSet(ctx, s.Documents, accountID)
	if err != nil {
		return fmt.Errorf("failed to load document set: %w", err)
	}
	set[key] = &file
	if err := saveDocumentSet(ctx, s.Documents, accountID, set); err != nil {
		return err
	}

	if s.Reminders != nil && !requiredGroupsComplete(set) {
		if err := s.Reminders.ScheduleCompletionReminder(accountID); err != nil {
			utils.GetLogger().Warn("SetDocument: failed to schedule completion reminder",
				zap.String("accountId", accountID), zap.Error(err))
		}
	}
	return nil
}

// GetDocumentSet returns the staged set with file contents stripped, for
// checklist display.
func (s *DefaultProfileService) GetDocumentSet(ctx context.Context, accountID string) (models.DocumentSet, error) {
	if accountID == "" {
		return nil, PreconditionError{Message: "an authenticated session is required"}
	}
	set, err := loadDocumentSet(ctx, s.Documents, accountID)
	if err != nil {
		return nil, err
	}
	for k, f := range set {
		if f != nil {
			set[k] = &models.DocumentFile{Name: f.Name, Size: f.Size, ContentType: f.ContentType}
		}
	}
	return set, nil
}

func requiredGroupsComplete(set models.DocumentSet) bool {
	return set.Has(models.PersonalDocuments...) && set.Has(models.ProfessionalDocuments...)
}
