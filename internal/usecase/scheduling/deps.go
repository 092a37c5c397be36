package scheduling

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/calendar-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/httperr"
	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

// Auditor is satisfied by *audit.Dispatcher.
type Auditor interface {
	Dispatch(ev audit.Event)
}

func requireUser(ctx context.Context, repo domain.Repository, id, code string) (*models.User, error) {
	u, err := repo.GetUserByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness(code)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
