package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/calendar-scheduler/internal/audit"
	"github.com/BruksfildServices01/calendar-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/httperr"
	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

type RegisterUserInput struct {
	Name     string
	Password string
}

type RegisterUserOutput struct {
	User  *models.User
	Token string // empty when no password was given
}

type RegisterUser struct {
	repo   domain.Repository
	audit  Auditor
	secret string
	now    func() time.Time
}

func NewRegisterUser(repo domain.Repository, audit Auditor, secret string) *RegisterUser {
	return &RegisterUser{repo: repo, audit: audit, secret: secret, now: time.Now}
}

func (uc *RegisterUser) Execute(ctx context.Context, in RegisterUserInput) (*RegisterUserOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("invalid_name")
	}

	user := &models.User{Name: name}

	// Only users with a password can log back in, so only they claim a username.
	if in.Password != "" {
		if _, err := uc.repo.GetUserByUsername(ctx, name); err == nil {
			return nil, httperr.ErrBusiness(domain.CodeUsernameTaken)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}

		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Username = &name
		user.PasswordHash = hash
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, httperr.ErrBusiness(domain.CodeUsernameTaken)
		}
		return nil, err
	}

	out := &RegisterUserOutput{User: user}
	if user.HasPassword() {
		token, err := auth.MakeToken(user.ID, uc.secret, uc.now())
		if err != nil {
			return nil, fmt.Errorf("sign token: %w", err)
		}
		out.Token = token
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   user.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: user.ID,
	})

	return out, nil
}
