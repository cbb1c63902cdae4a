package repository

import (
	"context"

	"gorm.io/gorm"

	"salon-agenda/internal/model"
)

// WorkScheduleRepository is the weekly work-window data-access interface.
type WorkScheduleRepository interface {
	Create(ctx context.Context, ws *model.WorkSchedule) error
	GetByID(ctx context.Context, id string) (*model.WorkSchedule, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]model.WorkSchedule, error)
	ListByProfessionalAndDay(ctx context.Context, professionalID string, dayOfWeek int) ([]model.WorkSchedule, error)
	Update(ctx context.Context, ws *model.WorkSchedule) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type workScheduleRepo struct {
	db *gorm.DB
}

// NewWorkScheduleRepo creates a WorkScheduleRepository instance.
func NewWorkScheduleRepo(db *gorm.DB) WorkScheduleRepository {
	return &workScheduleRepo{db: db}
}

func (r *workScheduleRepo) Create(ctx context.Context, ws *model.WorkSchedule) error {
	return r.db.WithContext(ctx).Create(ws).Error
}

func (r *workScheduleRepo) GetByID(ctx context.Context, id string) (*model.WorkSchedule, error) {
	var ws model.WorkSchedule
	err := r.db.WithContext(ctx).
		Where("work_schedule_id = ?", id).
		First(&ws).Error
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *workScheduleRepo) ListByProfessional(ctx context.Context, professionalID string) ([]model.WorkSchedule, error) {
	var rows []model.WorkSchedule
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("day_of_week ASC, start_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *workScheduleRepo) ListByProfessionalAndDay(ctx context.Context, professionalID string, dayOfWeek int) ([]model.WorkSchedule, error) {
	var rows []model.WorkSchedule
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND day_of_week = ?", professionalID, dayOfWeek).
		Order("start_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *workScheduleRepo) Update(ctx context.Context, ws *model.WorkSchedule) error {
	return r.db.WithContext(ctx).Save(ws).Error
}

func (r *workScheduleRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.WorkSchedule{}).
		Where("work_schedule_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
