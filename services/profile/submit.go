package profile

import (
	"context"
	"fmt"

	"medcrew/models"
	"medcrew/utils"

	"go.uber.org/zap"
)

// Submit uploads every staged file in slot order and persists one aggregate
// record of retrieval URLs. A duplicate submit while one is in flight for the
// account returns ErrSubmitInFlight. If any upload or the record write fails, no
// record exists and the staged set is untouched so the user can retry
// without re-selecting files. On full success the staged set is cleared and
// the checklist resets to the first group.
func (s *DefaultProfileService) Submit(ctx context.Context, accountID string) error {
	if accountID == "" {
		return PreconditionError{Message: "an authenticated session is required"}
	}

	set, err := loadDocumentSet(ctx, s.Documents, accountID)
	if err != nil {
		return fmt.Errorf("failed to load document set: %w", err)
	}
	if missing := set.Missing(models.PersonalDocuments); len(missing) > 0 {
		return ValidationError{Field: string(missing[0]), Message: fmt.Sprintf("the %s document is required", missing[0])}
	}
	if missing := set.Missing(models.ProfessionalDocuments); len(missing) > 0 {
		return ValidationError{Field: string(missing[0]), Message: fmt.Sprintf("the %s document is required", missing[0])}
	}

	// Exactly one upload+record sequence per account at a time; duplicates
	// are suppressed until the pending one resolves.
	acquired, err := acquireSubmitLock(ctx, s.Documents, accountID)
	if err != nil {
		return err
	}
	if !acquired {
		return ErrSubmitInFlight
	}
	defer releaseSubmitLock(ctx, s.Documents, accountID)

	logger := utils.GetLogger()

	// Ordered sequential uploads; the aggregate record is written only after
	// every upload has completed.
	urls := make(map[string]string, len(set))
	for _, key := range models.AllDocumentKeys() {
		file := set[key]
		if file == nil {
			continue
		}
		path := fmt.Sprintf("profiles/%s/%s", accountID, key)
		objectID, err := s.Store.Upload(ctx, path, file.ContentType, file.Data)
		if err != nil {
			logger.Error("Submit: document upload failed",
				zap.String("accountId", accountID), zap.String("key", string(key)), zap.Error(err))
			s.notifyFailure(ctx, accountID)
			return PartialFailureError{Err: err}
		}
		url, err := s.Store.GetRetrievalURL(ctx, objectID, 0)
		if err != nil {
			logger.Error("Submit: failed to issue retrieval URL",
				zap.String("accountId", accountID), zap.String("key", string(key)), zap.Error(err))
			s.notifyFailure(ctx, accountID)
			return PartialFailureError{Err: err}
		}
		urls[string(key)] = url
	}

	record := models.ProfileDocumentRecord{
		AccountID: accountID,
		URLs:      urls,
	}
	if _, err := s.Repo.SaveDocumentRecord(ctx, record); err != nil {
		logger.Error("Submit: failed to persist document record",
			zap.String("accountId", accountID), zap.Error(err))
		s.notifyFailure(ctx, accountID)
		return PartialFailureError{Err: err}
	}

	if err := clearDocumentSet(ctx, s.Documents, accountID); err != nil {
		logger.Warn("Submit: failed to clear staged document set",
			zap.String("accountId", accountID), zap.Error(err))
	}
	if err := saveChecklistStep(ctx, s.Documents, accountID, models.GroupPersonal); err != nil {
		logger.Warn("Submit: failed to reset checklist step",
			zap.String("accountId", accountID), zap.Error(err))
	}

	s.Notifier.Notify(ctx, accountID, models.Notification{
		Title:       "Documents submitted",
		Description: "Your documents were uploaded and are under review.",
		Severity:    models.SeveritySuccess,
	})
	return nil
}

// FinishEarly submits the checklist from any group once the personal and
// professional groups are both fully satisfied. The specialist group is
// never required.
func (s *DefaultProfileService) FinishEarly(ctx context.Context, accountID string) error {
	if accountID == "" {
		return PreconditionError{Message: "an authenticated session is required"}
	}
	set, err := loadDocumentSet(ctx, s.Documents, accountID)
	if err != nil {
		return fmt.Errorf("failed to load document set: %w", err)
	}
	if !requiredGroupsComplete(set) {
		return ValidationError{Message: "all personal and professional documents are required before finishing"}
	}
	return s.Submit(ctx, accountID)
}

// GetDocumentRecord returns the most recent submitted document record for the
// account, or nil when nothing has been submitted yet.
func (s *DefaultProfileService) GetDocumentRecord(ctx context.Context, accountID string) (*models.ProfileDocumentRecord, error) {
	if accountID == "" {
		return nil, PreconditionError{Message: "an authenticated session is required"}
	}
	record, err := s.Repo.GetDocumentRecord(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document record: %w", err)
	}
	return record, nil
}

func (s *DefaultProfileService) notifyFailure(ctx context.Context, accountID string) {
	s.Notifier.Notify(ctx, accountID, models.Notification{
		Title:       "Document submission failed",
		Description: "We could not submit your documents. Your selected files were kept; please try again.",
		Severity:    models.SeverityError,
	})
}
