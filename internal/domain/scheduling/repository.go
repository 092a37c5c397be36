package scheduling

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

// ErrNotFound is returned by repositories when a lookup matches nothing.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique constraint (the username) is hit.
var ErrDuplicate = errors.New("duplicate record")

type Repository interface {
	// -------- Users --------
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// -------- Tasks --------
	CreateTask(ctx context.Context, t *models.Task) error
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)

	// -------- Availability --------
	ListAvailability(ctx context.Context, userID string) ([]models.AvailabilitySlot, error)

	// ReplaceAvailability swaps the user's whole slot set for slots.
	ReplaceAvailability(ctx context.Context, userID string, slots []models.AvailabilitySlot) error

	// -------- Appointments --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	ListAppointments(ctx context.Context, userID string) ([]models.Appointment, error)

	// -------- Audit --------
	SaveAuditLog(ctx context.Context, log *models.AuditLog) error
	ListAuditLogs(ctx context.Context, userID string, limit, offset int) ([]models.AuditLog, int64, error)
}
