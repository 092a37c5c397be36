package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

const pgUniqueViolation = "23505"

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return domain.ErrDuplicate
	}
	return err
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *SchedulingGormRepository) GetUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *SchedulingGormRepository) GetUserByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// --------------------------------------------------
// Tasks
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateTask(
	ctx context.Context,
	t *models.Task,
) error {
	return translate(r.db.WithContext(ctx).Omit("User").Create(t).Error)
}

func (r *SchedulingGormRepository) ListTasks(
	ctx context.Context,
	userID string,
) ([]models.Task, error) {

	var tasks []models.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, translate(err)
	}
	return tasks, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *SchedulingGormRepository) ListAvailability(
	ctx context.Context,
	userID string,
) ([]models.AvailabilitySlot, error) {

	var slots []models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&slots).Error; err != nil {
		return nil, translate(err)
	}
	return slots, nil
}

func (r *SchedulingGormRepository) ReplaceAvailability(
	ctx context.Context,
	userID string,
	slots []models.AvailabilitySlot,
) error {

	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ?", userID).
			Delete(&models.AvailabilitySlot{}).Error; err != nil {
			return err
		}

		if len(slots) == 0 {
			return nil
		}

		toCreate := make([]models.AvailabilitySlot, 0, len(slots))
		for _, s := range slots {
			toCreate = append(toCreate, models.AvailabilitySlot{
				UserID: userID,
				Start:  s.Start,
				End:    s.End,
			})
		}
		return tx.Create(&toCreate).Error
	}))
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate(r.db.WithContext(ctx).Omit("User", "Recipient").Create(ap).Error)
}

func (r *SchedulingGormRepository) ListAppointments(
	ctx context.Context,
	userID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_at ASC").
		Find(&apps).Error; err != nil {
		return nil, translate(err)
	}
	return apps, nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *SchedulingGormRepository) SaveAuditLog(
	ctx context.Context,
	log *models.AuditLog,
) error {
	return translate(r.db.WithContext(ctx).Create(log).Error)
}

func (r *SchedulingGormRepository) ListAuditLogs(
	ctx context.Context,
	userID string,
	limit, offset int,
) ([]models.AuditLog, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		return nil, 0, translate(err)
	}

	return logs, total, nil
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
