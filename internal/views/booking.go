package views

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/calendar-scheduler/internal/dto"
)

const ConfirmationMessage = "Appointment successfully made!"

var (
	ErrBadRoute      = errors.New("not a /schedule/{userId} route")
	ErrCannotConfirm = errors.New("booking cannot be confirmed")
)

type BookingState int

const (
	StateLoading BookingState = iota
	StateBrowsing
	StateAwaitingName
	StateConfirmed
)

func (s BookingState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateBrowsing:
		return "browsing"
	case StateAwaitingName:
		return "awaiting_name"
	case StateConfirmed:
		return "confirmed"
	default:
		return fmt.Sprintf("BookingState(%d)", int(s))
	}
}

// ParseScheduleRoute extracts the owner id from "/schedule/{userId}". A full
// share link is accepted too.
func ParseScheduleRoute(route string) (string, error) {
	path := route
	if u, err := url.Parse(route); err == nil && u.Path != "" {
		path = u.Path
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] != "schedule" || parts[1] == "" {
		return "", fmt.Errorf("%w: %q", ErrBadRoute, route)
	}
	return parts[1], nil
}

// BookingPage lets an anonymous visitor book one of the owner's slots.
// Selecting a slot never removes it; the only duplicate guard is that a page
// confirms at most once.
type BookingPage struct {
	backend Backend
	log     zerolog.Logger

	OwnerID string
	State   BookingState
	Events  []Event

	SelectedStart time.Time
	SelectedEnd   time.Time
	Name          string
	Message       string

	confirmed bool
}

func NewBookingPage(backend Backend, log zerolog.Logger, ownerID string) *BookingPage {
	return &BookingPage{backend: backend, log: log, OwnerID: ownerID, State: StateLoading}
}

// Load fetches the owner's availability. On failure the page stays loading.
func (p *BookingPage) Load(ctx context.Context) error {
	slots, err := p.backend.ListAvailability(ctx, p.OwnerID)
	if err != nil {
		p.log.Error().Err(err).Str("owner_id", p.OwnerID).Msg("error fetching availability")
		return err
	}

	p.Events = availabilityEvents(slots)
	if p.State == StateLoading {
		p.State = StateBrowsing
	}
	return nil
}

func (p *BookingPage) SelectSlot(start, end time.Time) {
	if p.confirmed {
		return
	}
	p.SelectedStart = start
	p.SelectedEnd = end
	p.State = StateAwaitingName
}

func (p *BookingPage) SelectEvent(ev Event) {
	p.SelectSlot(ev.Start, ev.End)
}

// Cancel closes the confirmation panel.
func (p *BookingPage) Cancel() {
	if p.State == StateAwaitingName {
		p.State = StateBrowsing
	}
}

func (p *BookingPage) CanConfirm() bool {
	return p.State == StateAwaitingName &&
		p.Name != "" &&
		!p.confirmed
}

// Confirm creates a throwaway visitor user and then the appointment. Any
// failure leaves the page awaiting a name so the visitor can retry.
func (p *BookingPage) Confirm(ctx context.Context) error {
	if !p.CanConfirm() {
		return ErrCannotConfirm
	}

	visitor, err := p.backend.CreateRandomUser(ctx, p.Name)
	if err != nil {
		p.log.Error().Err(err).Msg("error creating visitor")
		return err
	}

	_, err = p.backend.CreateAppointment(ctx, p.OwnerID, visitor.ID, dto.NewAppointment{
		Title: "Appointment with " + p.Name,
		Start: p.SelectedStart,
		End:   p.SelectedEnd,
	})
	if err != nil {
		p.log.Error().Err(err).Msg("error making appointment")
		return err
	}

	p.confirmed = true
	p.State = StateConfirmed
	p.Message = ConfirmationMessage
	return nil
}
