package scheduling

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/calendar-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

// CreateVisitor mints the throwaway user a booking visitor is recorded as.
type CreateVisitor struct {
	repo  domain.Repository
	audit Auditor
}

func NewCreateVisitor(repo domain.Repository, audit Auditor) *CreateVisitor {
	return &CreateVisitor{repo: repo, audit: audit}
}

func (uc *CreateVisitor) Execute(ctx context.Context, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Guest-" + uuid.NewString()[:8]
	}

	user := &models.User{Name: name, Anonymous: true}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   user.ID,
		Action:   audit.ActionVisitorCreated,
		Entity:   "user",
		EntityID: user.ID,
	})

	return user, nil
}
