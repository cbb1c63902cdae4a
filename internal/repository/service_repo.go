package repository

import (
	"context"

	"gorm.io/gorm"

	"salon-agenda/internal/model"
)

// ServiceRepository is the service-catalog data-access interface.
type ServiceRepository interface {
	Create(ctx context.Context, svc *model.Service) error
	GetByID(ctx context.Context, id string) (*model.Service, error)
	List(ctx context.Context, includeInactive bool) ([]model.Service, error)
	Update(ctx context.Context, svc *model.Service) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type serviceRepo struct {
	db *gorm.DB
}

// NewServiceRepo creates a ServiceRepository instance.
func NewServiceRepo(db *gorm.DB) ServiceRepository {
	return &serviceRepo{db: db}
}

func (r *serviceRepo) Create(ctx context.Context, svc *model.Service) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *serviceRepo) GetByID(ctx context.Context, id string) (*model.Service, error) {
	var svc model.Service
	err := r.db.WithContext(ctx).
		Where("service_id = ?", id).
		First(&svc).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepo) List(ctx context.Context, includeInactive bool) ([]model.Service, error) {
	var svcs []model.Service
	db := r.db.WithContext(ctx)
	if !includeInactive {
		db = db.Where("active = ?", true)
	}
	err := db.Order("name ASC").Find(&svcs).Error
	return svcs, err
}

func (r *serviceRepo) Update(ctx context.Context, svc *model.Service) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

func (r *serviceRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Service{}).
		Where("service_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
