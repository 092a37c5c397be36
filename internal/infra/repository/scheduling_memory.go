package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

// SchedulingMemoryRepository keeps everything in process. It backs
// STORAGE=memory and the handler tests.
type SchedulingMemoryRepository struct {
	mu sync.RWMutex

	users        map[string]models.User
	tasks        []models.Task
	availability map[string][]models.AvailabilitySlot
	appointments []models.Appointment
	auditLogs    []models.AuditLog

	nextSlotID  uint
	nextAuditID uint
	now         func() time.Time
}

func NewSchedulingMemoryRepository() *SchedulingMemoryRepository {
	return &SchedulingMemoryRepository{
		users:        make(map[string]models.User),
		availability: make(map[string][]models.AvailabilitySlot),
		now:          time.Now,
	}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *SchedulingMemoryRepository) CreateUser(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.Username != nil {
		for _, existing := range r.users {
			if existing.Username != nil && *existing.Username == *u.Username {
				return domain.ErrDuplicate
			}
		}
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := r.now()
	u.CreatedAt, u.UpdatedAt = now, now
	r.users[u.ID] = *u
	return nil
}

func (r *SchedulingMemoryRepository) GetUserByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *SchedulingMemoryRepository) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username != nil && *u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// --------------------------------------------------
// Tasks
// --------------------------------------------------

func (r *SchedulingMemoryRepository) CreateTask(_ context.Context, t *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := r.now()
	t.CreatedAt, t.UpdatedAt = now, now
	r.tasks = append(r.tasks, *t)
	return nil
}

func (r *SchedulingMemoryRepository) ListTasks(_ context.Context, userID string) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Task{}
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *SchedulingMemoryRepository) ListAvailability(_ context.Context, userID string) ([]models.AvailabilitySlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.AvailabilitySlot, len(r.availability[userID]))
	copy(out, r.availability[userID])
	return out, nil
}

func (r *SchedulingMemoryRepository) ReplaceAvailability(_ context.Context, userID string, slots []models.AvailabilitySlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := make([]models.AvailabilitySlot, 0, len(slots))
	for _, s := range slots {
		r.nextSlotID++
		replaced = append(replaced, models.AvailabilitySlot{
			ID:        r.nextSlotID,
			UserID:    userID,
			Start:     s.Start,
			End:       s.End,
			CreatedAt: r.now(),
		})
	}
	r.availability[userID] = replaced
	return nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *SchedulingMemoryRepository) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	ap.CreatedAt = r.now()
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *SchedulingMemoryRepository) ListAppointments(_ context.Context, userID string) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if ap.UserID == userID {
			out = append(out, ap)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *SchedulingMemoryRepository) SaveAuditLog(_ context.Context, log *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextAuditID++
	log.ID = r.nextAuditID
	log.CreatedAt = r.now()
	r.auditLogs = append(r.auditLogs, *log)
	return nil
}

func (r *SchedulingMemoryRepository) ListAuditLogs(_ context.Context, userID string, limit, offset int) ([]models.AuditLog, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.AuditLog
	for i := len(r.auditLogs) - 1; i >= 0; i-- {
		if r.auditLogs[i].UserID == userID {
			matched = append(matched, r.auditLogs[i])
		}
	}

	total := int64(len(matched))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

var _ domain.Repository = (*SchedulingMemoryRepository)(nil)
