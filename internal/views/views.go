// Package views holds the headless state behind each calendar screen. Every
// collaborator (REST backend, session store, notifications, navigation) is
// injected, so the flows run the same under tests and in the terminal client.
package views

import (
	"context"
	"time"

	"github.com/BruksfildServices01/calendar-scheduler/internal/dto"
)

// Backend is the REST surface the screens call. *client.Client satisfies it.
type Backend interface {
	Me(ctx context.Context, token string) (*dto.User, error)
	Register(ctx context.Context, name, password string) (*dto.AuthResponse, error)
	Login(ctx context.Context, username, password string) (*dto.AuthResponse, error)

	ListTasks(ctx context.Context, userID string) ([]dto.Task, error)
	CreateTask(ctx context.Context, userID string, task dto.NewTask) (*dto.Task, error)

	ListAvailability(ctx context.Context, userID string) ([]dto.Slot, error)
	SubmitAvailability(ctx context.Context, userID string, slots []dto.Slot) (*dto.Ack, error)

	CreateRandomUser(ctx context.Context, name string) (*dto.User, error)
	CreateAppointment(ctx context.Context, ownerID, recipientID string, ap dto.NewAppointment) (*dto.Appointment, error)
}

// Notifier shows a short acknowledgment to the person at the screen.
type Notifier interface {
	Notify(msg string)
}

// Navigator exposes where the app is being served from.
type Navigator interface {
	Origin() string
}

type EventKind string

const (
	KindTask         EventKind = "task"
	KindAvailability EventKind = "availability"
)

// Event is one entry rendered on a calendar.
type Event struct {
	ID    string
	Kind  EventKind
	Title string
	Start time.Time
	End   time.Time
}

func taskEvent(t dto.Task) Event {
	return Event{ID: t.ID, Kind: KindTask, Title: t.Title, Start: t.Start, End: t.End}
}
