package scheduling

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/calendar-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

type BookAppointmentInput struct {
	OwnerID     string
	RecipientID string
	Title       string
	Start       time.Time
	End         time.Time
}

// BookAppointment records a visitor booking. The owner's availability is
// left untouched, so the same interval stays bookable by others.
type BookAppointment struct {
	repo  domain.Repository
	audit Auditor
}

func NewBookAppointment(repo domain.Repository, audit Auditor) *BookAppointment {
	return &BookAppointment{repo: repo, audit: audit}
}

func (uc *BookAppointment) Execute(ctx context.Context, in BookAppointmentInput) (*models.Appointment, error) {
	if err := domain.ValidateInterval(in.Start, in.End); err != nil {
		return nil, err
	}

	if _, err := requireUser(ctx, uc.repo, in.OwnerID, domain.CodeUserNotFound); err != nil {
		return nil, err
	}
	recipient, err := requireUser(ctx, uc.repo, in.RecipientID, domain.CodeRecipientNotFound)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = domain.AppointmentTitle(recipient.Name)
	}

	ap := &models.Appointment{
		UserID:      in.OwnerID,
		RecipientID: in.RecipientID,
		Title:       title,
		Start:       in.Start,
		End:         in.End,
	}
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.OwnerID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"recipient_id": in.RecipientID},
	})

	return ap, nil
}
