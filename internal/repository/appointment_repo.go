package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"salon-agenda/internal/model"
	pkgerrors "salon-agenda/pkg/errors"
)

// AppointmentFilter narrows admin appointment listings. A zero Date means
// no date filter.
type AppointmentFilter struct {
	ProfessionalID string
	Date           time.Time
	Status         string
	Offset         int
	Limit          int
}

// AppointmentRepository is the booking data-access interface.
type AppointmentRepository interface {
	// CreateIfFree inserts the appointment only if no occupying appointment
	// overlaps its interval, inside one transaction. Conflicting rows are
	// locked for the duration of the check. Returns pkgerrors.ErrSlotTaken
	// on conflict.
	CreateIfFree(ctx context.Context, appt *model.Appointment) error
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]model.Appointment, error)
	ListByProfessionalAndDate(ctx context.Context, professionalID string, date time.Time, statuses []string) ([]model.Appointment, error)
	ListUpcomingByProfessional(ctx context.Context, professionalID string, fromDate time.Time) ([]model.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]model.Appointment, int64, error)
	UpdateStatus(ctx context.Context, appt *model.Appointment) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type appointmentRepo struct {
	db *gorm.DB
}

// NewAppointmentRepo creates an AppointmentRepository instance.
func NewAppointmentRepo(db *gorm.DB) AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) CreateIfFree(ctx context.Context, appt *model.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conflicts int64
		err := tx.Model(&model.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("professional_id = ? AND date = ?", appt.ProfessionalID, appt.Date).
			Where("status IN ?", model.OccupyingStatuses).
			Where("start_time < ? AND end_time > ?", appt.EndTime, appt.StartTime).
			Count(&conflicts).Error
		if err != nil {
			return err
		}
		if conflicts > 0 {
			return pkgerrors.ErrSlotTaken
		}
		return tx.Create(appt).Error
	})
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	var appt model.Appointment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Professional").
		Preload("Service").
		Where("appointment_id = ?", id).
		First(&appt).Error
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepo) ListByUser(ctx context.Context, userID string) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Professional").
		Preload("Service").
		Where("user_id = ?", userID).
		Order("date DESC, start_time DESC").
		Find(&appts).Error
	return appts, err
}

func (r *appointmentRepo) ListByProfessionalAndDate(ctx context.Context, professionalID string, date time.Time, statuses []string) ([]model.Appointment, error) {
	var appts []model.Appointment
	db := r.db.WithContext(ctx).
		Where("professional_id = ? AND date = ?", professionalID, date)
	if len(statuses) > 0 {
		db = db.Where("status IN ?", statuses)
	}
	err := db.Order("start_time ASC").Find(&appts).Error
	return appts, err
}

func (r *appointmentRepo) ListUpcomingByProfessional(ctx context.Context, professionalID string, fromDate time.Time) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Where("professional_id = ? AND date >= ?", professionalID, fromDate).
		Where("status IN ?", model.OccupyingStatuses).
		Order("date ASC, start_time ASC").
		Find(&appts).Error
	return appts, err
}

func (r *appointmentRepo) List(ctx context.Context, filter AppointmentFilter) ([]model.Appointment, int64, error) {
	var appts []model.Appointment
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Appointment{})
	if filter.ProfessionalID != "" {
		db = db.Where("professional_id = ?", filter.ProfessionalID)
	}
	if !filter.Date.IsZero() {
		db = db.Where("date = ?", filter.Date)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("User").
		Preload("Professional").
		Preload("Service").
		Offset(filter.Offset).Limit(filter.Limit).
		Order("date DESC, start_time DESC").
		Find(&appts).Error
	return appts, total, err
}

func (r *appointmentRepo) UpdateStatus(ctx context.Context, appt *model.Appointment) error {
	oldVersion := appt.Version
	result := r.db.WithContext(ctx).
		Model(appt).
		Where("appointment_id = ? AND version = ?", appt.AppointmentID, oldVersion).
		Updates(map[string]interface{}{
			"status":     appt.Status,
			"updated_by": appt.UpdatedBy,
			"version":    oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	appt.Version = oldVersion + 1
	return nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("appointment_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
