package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/calendar-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/httperr"
	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

type Login struct {
	repo   domain.Repository
	secret string
	now    func() time.Time
}

func NewLogin(repo domain.Repository, secret string) *Login {
	return &Login{repo: repo, secret: secret, now: time.Now}
}

func (uc *Login) Execute(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := uc.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", httperr.ErrBusiness(domain.CodeInvalidCredentials)
	}
	if err != nil {
		return nil, "", err
	}

	if !user.HasPassword() || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", httperr.ErrBusiness(domain.CodeInvalidCredentials)
	}

	token, err := auth.MakeToken(user.ID, uc.secret, uc.now())
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}
