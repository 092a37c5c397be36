package scheduling

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/calendar-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

// ResolveUser maps a stored session value (token or raw user id) to a user.
// Unknown, expired or malformed values resolve to nil without error so the
// client falls back to its registration prompt.
type ResolveUser struct {
	repo   domain.Repository
	secret string
}

func NewResolveUser(repo domain.Repository, secret string) *ResolveUser {
	return &ResolveUser{repo: repo, secret: secret}
}

func (uc *ResolveUser) Execute(ctx context.Context, token, id string) (*models.User, error) {
	// Clients store either a token or, for password-less users, the bare id,
	// and send it back as ?token=.
	if token != "" {
		if uid, err := auth.ParseToken(token, uc.secret); err == nil {
			id = uid
		} else {
			id = token
		}
	}
	if id == "" {
		return nil, nil
	}

	u, err := uc.repo.GetUserByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
