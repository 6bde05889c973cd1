package profile

import (
	"context"
	"fmt"

	"medcrew/models"
)

// Advance evaluates the required-document predicate for the CURRENT group and
// moves to the next one. A missing required slot blocks the transition and is
// named in the error. Advancing at the last group is a no-op.
func (s *DefaultProfileService) Advance(ctx context.Context, accountID string) (models.DocumentGroup, error) {
	if accountID == "" {
		return 0, PreconditionError{Message: "an authenticated session is required"}
	}
	group, err := loadChecklistStep(ctx, s.Documents, accountID)
	if err != nil {
		return 0, err
	}
	if group >= models.GroupSpecialist {
		return group, nil
	}

	if models.GroupRequired(group) {
		set, err := loadDocumentSet(ctx, s.Documents, accountID)
		if err != nil {
			return group, err
		}
		if missing := set.Missing(models.GroupKeys(group)); len(missing) > 0 {
			return group, ValidationError{
				Field:   string(missing[0]),
				Message: fmt.Sprintf("the %s document is required before continuing", missing[0]),
			}
		}
	}

	group++
	if err := saveChecklistStep(ctx, s.Documents, accountID, group); err != nil {
		return group - 1, err
	}
	return group, nil
}

// Retreat moves one group back, floored at the first.
func (s *DefaultProfileService) Retreat(ctx context.Context, accountID string) (models.DocumentGroup, error) {
	if accountID == "" {
		return 0, PreconditionError{Message: "an authenticated session is required"}
	}
	group, err := loadChecklistStep(ctx, s.Documents, accountID)
	if err != nil {
		return 0, err
	}
	if group > models.GroupPersonal {
		group--
		if err := saveChecklistStep(ctx, s.Documents, accountID, group); err != nil {
			return group + 1, err
		}
	}
	return group, nil
}

// CurrentGroup returns the group the checklist is at.
func (s *DefaultProfileService) CurrentGroup(ctx context.Context, accountID string) (models.DocumentGroup, error) {
	if accountID == "" {
		return 0, PreconditionError{Message: "an authenticated session is required"}
	}
	return loadChecklistStep(ctx, s.Documents, accountID)
}
