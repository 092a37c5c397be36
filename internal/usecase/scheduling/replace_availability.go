package scheduling

import (
	"context"

	"github.com/BruksfildServices01/calendar-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

type ReplaceAvailabilityInput struct {
	UserID string
	Slots  []models.AvailabilitySlot
}

// ReplaceAvailability stores the submitted list as the user's complete
// availability. Two clients submitting concurrently overwrite each other;
// the last write wins.
type ReplaceAvailability struct {
	repo  domain.Repository
	audit Auditor
}

func NewReplaceAvailability(repo domain.Repository, audit Auditor) *ReplaceAvailability {
	return &ReplaceAvailability{repo: repo, audit: audit}
}

func (uc *ReplaceAvailability) Execute(ctx context.Context, in ReplaceAvailabilityInput) (int, error) {
	for _, s := range in.Slots {
		if err := domain.ValidateInterval(s.Start, s.End); err != nil {
			return 0, err
		}
	}

	if _, err := requireUser(ctx, uc.repo, in.UserID, domain.CodeUserNotFound); err != nil {
		return 0, err
	}

	if err := uc.repo.ReplaceAvailability(ctx, in.UserID, in.Slots); err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionAvailabilityReplaced,
		Entity:   "availability",
		EntityID: in.UserID,
		Metadata: map[string]int{"count": len(in.Slots)},
	})

	return len(in.Slots), nil
}
