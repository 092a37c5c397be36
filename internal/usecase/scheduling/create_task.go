package scheduling

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/calendar-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/httperr"
	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

type CreateTaskInput struct {
	UserID string
	Title  string
	Start  time.Time
	End    time.Time
}

type CreateTask struct {
	repo  domain.Repository
	audit Auditor
}

func NewCreateTask(repo domain.Repository, audit Auditor) *CreateTask {
	return &CreateTask{repo: repo, audit: audit}
}

func (uc *CreateTask) Execute(ctx context.Context, in CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, httperr.ErrBusiness("invalid_title")
	}
	if err := domain.ValidateInterval(in.Start, in.End); err != nil {
		return nil, err
	}

	if _, err := requireUser(ctx, uc.repo, in.UserID, domain.CodeUserNotFound); err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID: in.UserID,
		Title:  title,
		Start:  in.Start,
		End:    in.End,
	}
	if err := uc.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionTaskCreated,
		Entity:   "task",
		EntityID: task.ID,
	})

	return task, nil
}
