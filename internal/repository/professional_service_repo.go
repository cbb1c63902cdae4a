package repository

import (
	"context"

	"gorm.io/gorm"

	"salon-agenda/internal/model"
)

// ProfessionalServiceRepository manages the professional↔service link table.
type ProfessionalServiceRepository interface {
	Link(ctx context.Context, link *model.ProfessionalService) error
	Unlink(ctx context.Context, professionalID, serviceID string) (bool, error)
	GetLink(ctx context.Context, professionalID, serviceID string) (*model.ProfessionalService, error)
	ListServicesByProfessional(ctx context.Context, professionalID string) ([]model.Service, error)
	ListProfessionalsByService(ctx context.Context, serviceID string) ([]model.Professional, error)
}

type professionalServiceRepo struct {
	db *gorm.DB
}

// NewProfessionalServiceRepo creates a ProfessionalServiceRepository instance.
func NewProfessionalServiceRepo(db *gorm.DB) ProfessionalServiceRepository {
	return &professionalServiceRepo{db: db}
}

func (r *professionalServiceRepo) Link(ctx context.Context, link *model.ProfessionalService) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *professionalServiceRepo) Unlink(ctx context.Context, professionalID, serviceID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("professional_id = ? AND service_id = ?", professionalID, serviceID).
		Delete(&model.ProfessionalService{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *professionalServiceRepo) GetLink(ctx context.Context, professionalID, serviceID string) (*model.ProfessionalService, error) {
	var link model.ProfessionalService
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND service_id = ?", professionalID, serviceID).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *professionalServiceRepo) ListServicesByProfessional(ctx context.Context, professionalID string) ([]model.Service, error) {
	var svcs []model.Service
	err := r.db.WithContext(ctx).
		Joins("JOIN professional_services ps ON ps.service_id = services.service_id").
		Where("ps.professional_id = ?", professionalID).
		Where("services.deleted_at IS NULL").
		Order("services.name ASC").
		Find(&svcs).Error
	return svcs, err
}

func (r *professionalServiceRepo) ListProfessionalsByService(ctx context.Context, serviceID string) ([]model.Professional, error) {
	var ps []model.Professional
	err := r.db.WithContext(ctx).
		Joins("JOIN professional_services ps ON ps.professional_id = professionals.professional_id").
		Where("ps.service_id = ?", serviceID).
		Where("professionals.deleted_at IS NULL").
		Order("professionals.name ASC").
		Find(&ps).Error
	return ps, err
}
