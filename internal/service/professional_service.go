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

var (
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrServiceAlreadyLinked = errors.New("service is already linked to this professional")
	ErrLinkNotFound         = errors.New("service is not linked to this professional")
)

// ProfessionalService covers staff management and the service links.
type ProfessionalService interface {
	Create(ctx context.Context, req *dto.CreateProfessionalRequest, callerID string) (*dto.ProfessionalResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ProfessionalResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.ProfessionalResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateProfessionalRequest, callerID string) (*dto.ProfessionalResponse, error)
	Delete(ctx context.Context, id string, callerID string) error

	LinkService(ctx context.Context, professionalID string, req *dto.LinkServiceRequest, callerID string) error
	UnlinkService(ctx context.Context, professionalID, serviceID string) error
	ListServices(ctx context.Context, professionalID string) ([]dto.ServiceResponse, error)
}

type professionalService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProfessionalService creates a ProfessionalService instance.
func NewProfessionalService(repo *repository.Repository, logger *zap.Logger) ProfessionalService {
	return &professionalService{repo: repo, logger: logger}
}

func (s *professionalService) Create(ctx context.Context, req *dto.CreateProfessionalRequest, callerID string) (*dto.ProfessionalResponse, error) {
	prof := &model.Professional{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		CPF:            req.CPF,
		Address:        req.Address,
		ProfilePicture: req.ProfilePicture,
		Active:         true,
	}
	prof.CreatedBy = &callerID
	prof.UpdatedBy = &callerID

	if err := s.repo.Professional.Create(ctx, prof); err != nil {
		s.logger.Error("create professional failed", zap.Error(err))
		return nil, err
	}
	return toProfessionalResponse(prof), nil
}

func (s *professionalService) GetByID(ctx context.Context, id string) (*dto.ProfessionalResponse, error) {
	prof, err := s.repo.Professional.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, err
	}
	return toProfessionalResponse(prof), nil
}

func (s *professionalService) List(ctx context.Context, includeInactive bool) ([]dto.ProfessionalResponse, error) {
	profs, err := s.repo.Professional.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("list professionals failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.ProfessionalResponse, 0, len(profs))
	for i := range profs {
		out = append(out, *toProfessionalResponse(&profs[i]))
	}
	return out, nil
}

func (s *professionalService) Update(ctx context.Context, id string, req *dto.UpdateProfessionalRequest, callerID string) (*dto.ProfessionalResponse, error) {
	prof, err := s.repo.Professional.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		prof.Name = *req.Name
	}
	if req.Phone != nil {
		prof.Phone = *req.Phone
	}
	if req.Email != nil {
		prof.Email = *req.Email
	}
	if req.Address != nil {
		prof.Address = *req.Address
	}
	if req.ProfilePicture != nil {
		prof.ProfilePicture = req.ProfilePicture
	}
	if req.Active != nil {
		prof.Active = *req.Active
	}
	prof.UpdatedBy = &callerID

	if err := s.repo.Professional.Update(ctx, prof); err != nil {
		s.logger.Error("update professional failed", zap.Error(err))
		return nil, err
	}
	return toProfessionalResponse(prof), nil
}

func (s *professionalService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Professional.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfessionalNotFound
		}
		return err
	}
	return s.repo.Professional.Delete(ctx, id, callerID)
}

func (s *professionalService) LinkService(ctx context.Context, professionalID string, req *dto.LinkServiceRequest, callerID string) error {
	if _, err := s.repo.Professional.GetByID(ctx, professionalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfessionalNotFound
		}
		return err
	}
	if _, err := s.repo.Service.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		return err
	}

	if _, err := s.repo.ProfessionalService.GetLink(ctx, professionalID, req.ServiceID); err == nil {
		return ErrServiceAlreadyLinked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	link := &model.ProfessionalService{
		ProfessionalID: professionalID,
		ServiceID:      req.ServiceID,
		Commission:     req.Commission,
	}
	link.CreatedBy = &callerID
	link.UpdatedBy = &callerID

	if err := s.repo.ProfessionalService.Link(ctx, link); err != nil {
		s.logger.Error("link service failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *professionalService) UnlinkService(ctx context.Context, professionalID, serviceID string) error {
	removed, err := s.repo.ProfessionalService.Unlink(ctx, professionalID, serviceID)
	if err != nil {
		s.logger.Error("unlink service failed", zap.Error(err))
		return err
	}
	if !removed {
		return ErrLinkNotFound
	}
	return nil
}

func (s *professionalService) ListServices(ctx context.Context, professionalID string) ([]dto.ServiceResponse, error) {
	if _, err := s.repo.Professional.GetByID(ctx, professionalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, err
	}

	svcs, err := s.repo.ProfessionalService.ListServicesByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("list linked services failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.ServiceResponse, 0, len(svcs))
	for i := range svcs {
		out = append(out, *toServiceResponse(&svcs[i]))
	}
	return out, nil
}

func toProfessionalResponse(p *model.Professional) *dto.ProfessionalResponse {
	return &dto.ProfessionalResponse{
		ID:             p.ProfessionalID,
		Name:           p.Name,
		Phone:          p.Phone,
		Email:          p.Email,
		CPF:            p.CPF,
		Address:        p.Address,
		ProfilePicture: p.ProfilePicture,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}
