package views

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/calendar-scheduler/internal/dto"
	"github.com/BruksfildServices01/calendar-scheduler/internal/session"
)

// Identity decides whether the registration prompt is shown. The stored
// session value is a token when the server issued one, else the user id.
type Identity struct {
	backend Backend
	store   session.Store
	log     zerolog.Logger

	User          *dto.User
	PromptVisible bool

	// prompt fields
	Name     string
	Password string
}

func NewIdentity(backend Backend, store session.Store, log zerolog.Logger) *Identity {
	return &Identity{backend: backend, store: store, log: log}
}

// Bootstrap resolves the stored value. An unknown value is cleared and the
// prompt shown; a transport error leaves the prompt shown without retrying.
func (i *Identity) Bootstrap(ctx context.Context) error {
	value, ok := i.store.Get()
	if !ok {
		i.User = nil
		i.PromptVisible = true
		return nil
	}

	user, err := i.backend.Me(ctx, value)
	if err != nil {
		i.log.Error().Err(err).Msg("error fetching user")
		i.User = nil
		i.PromptVisible = true
		return err
	}

	if user == nil {
		i.log.Info().Msg("stored session no longer recognized")
		if err := i.store.Clear(); err != nil {
			i.log.Error().Err(err).Msg("error clearing session")
		}
		i.User = nil
		i.PromptVisible = true
		return nil
	}

	i.User = user
	i.PromptVisible = false
	return nil
}

func (i *Identity) Register(ctx context.Context) error {
	resp, err := i.backend.Register(ctx, i.Name, i.Password)
	if err != nil {
		i.log.Error().Err(err).Msg("error registering user")
		return err
	}
	return i.accept(resp)
}

// Login uses Name as the username.
func (i *Identity) Login(ctx context.Context) error {
	resp, err := i.backend.Login(ctx, i.Name, i.Password)
	if err != nil {
		i.log.Error().Err(err).Msg("error logging in")
		return err
	}
	return i.accept(resp)
}

func (i *Identity) accept(resp *dto.AuthResponse) error {
	value := resp.Token
	if value == "" {
		value = resp.User.ID
	}
	if err := i.store.Set(value); err != nil {
		i.log.Error().Err(err).Msg("error saving session")
		return err
	}

	user := resp.User
	i.User = &user
	i.PromptVisible = false
	i.Password = ""
	return nil
}

func (i *Identity) Logout() error {
	i.User = nil
	i.PromptVisible = true
	return i.store.Clear()
}

// Token returns the stored bearer token, or "" when the session only holds
// a bare user id.
func (i *Identity) Token() string {
	value, ok := i.store.Get()
	if !ok || (i.User != nil && value == i.User.ID) {
		return ""
	}
	return value
}
