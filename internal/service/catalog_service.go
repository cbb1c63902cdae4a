package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"salon-agenda/internal/dto"
	"salon-agenda/internal/model"
	"salon-agenda/internal/repository"
)

var ErrServiceNotFound = errors.New("service not found")

// CatalogService covers the bookable service catalog.
type CatalogService interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest, callerID string) (*dto.ServiceResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ServiceResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.ServiceResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateServiceRequest, callerID string) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
	ListProfessionals(ctx context.Context, serviceID string) ([]dto.ProfessionalResponse, error)
}

type catalogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogService creates a CatalogService instance.
func NewCatalogService(repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) Create(ctx context.Context, req *dto.CreateServiceRequest, callerID string) (*dto.ServiceResponse, error) {
	svc := &model.Service{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Active:      true,
	}
	svc.CreatedBy = &callerID
	svc.UpdatedBy = &callerID

	if err := s.repo.Service.Create(ctx, svc); err != nil {
		s.logger.Error("create service failed", zap.Error(err))
		return nil, err
	}
	return toServiceResponse(svc), nil
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	svc, err := s.repo.Service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return toServiceResponse(svc), nil
}

func (s *catalogService) List(ctx context.Context, includeInactive bool) ([]dto.ServiceResponse, error) {
	svcs, err := s.repo.Service.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("list services failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.ServiceResponse, 0, len(svcs))
	for i := range svcs {
		out = append(out, *toServiceResponse(&svcs[i]))
	}
	return out, nil
}

func (s *catalogService) Update(ctx context.Context, id string, req *dto.UpdateServiceRequest, callerID string) (*dto.ServiceResponse, error) {
	svc, err := s.repo.Service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = req.Description
	}
	if req.Duration != nil {
		svc.Duration = *req.Duration
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	svc.UpdatedBy = &callerID

	if err := s.repo.Service.Update(ctx, svc); err != nil {
		s.logger.Error("update service failed", zap.Error(err))
		return nil, err
	}
	return toServiceResponse(svc), nil
}

func (s *catalogService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Service.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		return err
	}
	return s.repo.Service.Delete(ctx, id, callerID)
}

func (s *catalogService) ListProfessionals(ctx context.Context, serviceID string) ([]dto.ProfessionalResponse, error) {
	if _, err := s.repo.Service.GetByID(ctx, serviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	profs, err := s.repo.ProfessionalService.ListProfessionalsByService(ctx, serviceID)
	if err != nil {
		s.logger.Error("list professionals by service failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.ProfessionalResponse, 0, len(profs))
	for i := range profs {
		out = append(out, *toProfessionalResponse(&profs[i]))
	}
	return out, nil
}

func toServiceResponse(svc *model.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          svc.ServiceID,
		Name:        svc.Name,
		Description: svc.Description,
		Duration:    svc.Duration,
		Price:       svc.Price,
		Active:      svc.Active,
		CreatedAt:   svc.CreatedAt.Format(time.RFC3339),
	}
}
