package views

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/calendar-scheduler/internal/dto"
)

// AvailabilityEditor accumulates open slots locally and submits the whole
// list, which replaces what the server holds.
type AvailabilityEditor struct {
	backend Backend
	nav     Navigator
	log     zerolog.Logger

	UserID    string
	Slots     []dto.Slot
	Open      bool
	ShareLink string
}

func NewAvailabilityEditor(backend Backend, nav Navigator, log zerolog.Logger, userID string) *AvailabilityEditor {
	return &AvailabilityEditor{backend: backend, nav: nav, log: log, UserID: userID}
}

func (e *AvailabilityEditor) Load(ctx context.Context) error {
	slots, err := e.backend.ListAvailability(ctx, e.UserID)
	if err != nil {
		e.log.Error().Err(err).Msg("error fetching availability")
		return err
	}
	e.Slots = slots
	return nil
}

// Events renders the slots, using each slot's position as its id.
func (e *AvailabilityEditor) Events() []Event {
	return availabilityEvents(e.Slots)
}

func (e *AvailabilityEditor) OpenModal() {
	e.Open = true
}

// SelectSlot appends locally; nothing is sent until Submit.
func (e *AvailabilityEditor) SelectSlot(start, end time.Time) {
	e.Slots = append(e.Slots, dto.Slot{Start: start, End: end})
}

// Submit sends every slot held locally. On failure the local list stays as
// it is.
func (e *AvailabilityEditor) Submit(ctx context.Context) error {
	if _, err := e.backend.SubmitAvailability(ctx, e.UserID, e.Slots); err != nil {
		e.log.Error().Err(err).Msg("error saving availability")
		return err
	}

	e.ShareLink = ShareLink(e.nav.Origin(), e.UserID)
	e.Open = false
	return nil
}

// ShareLink is the public booking page for userID.
func ShareLink(origin, userID string) string {
	return strings.TrimRight(origin, "/") + "/schedule/" + userID
}

func availabilityEvents(slots []dto.Slot) []Event {
	out := make([]Event, 0, len(slots))
	for i, s := range slots {
		out = append(out, Event{
			ID:    strconv.Itoa(i),
			Kind:  KindAvailability,
			Title: "Available",
			Start: s.Start,
			End:   s.End,
		})
	}
	return out
}
