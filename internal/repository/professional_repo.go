package repository

import (
	"context"

	"gorm.io/gorm"

	"salon-agenda/internal/model"
)

// ProfessionalRepository is the professional data-access interface.
type ProfessionalRepository interface {
	Create(ctx context.Context, p *model.Professional) error
	GetByID(ctx context.Context, id string) (*model.Professional, error)
	List(ctx context.Context, includeInactive bool) ([]model.Professional, error)
	Update(ctx context.Context, p *model.Professional) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type professionalRepo struct {
	db *gorm.DB
}

// NewProfessionalRepo creates a ProfessionalRepository instance.
func NewProfessionalRepo(db *gorm.DB) ProfessionalRepository {
	return &professionalRepo{db: db}
}

func (r *professionalRepo) Create(ctx context.Context, p *model.Professional) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *professionalRepo) GetByID(ctx context.Context, id string) (*model.Professional, error) {
	var p model.Professional
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *professionalRepo) List(ctx context.Context, includeInactive bool) ([]model.Professional, error) {
	var ps []model.Professional
	db := r.db.WithContext(ctx)
	if !includeInactive {
		db = db.Where("active = ?", true)
	}
	err := db.Order("name ASC").Find(&ps).Error
	return ps, err
}

func (r *professionalRepo) Update(ctx context.Context, p *model.Professional) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *professionalRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Professional{}).
		Where("professional_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
