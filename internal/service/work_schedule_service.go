package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"salon-agenda/internal/dto"
	"salon-agenda/internal/model"
	"salon-agenda/internal/repository"
	"salon-agenda/internal/scheduling"
)

var (
	ErrScheduleNotFound   = errors.New("work schedule not found")
	ErrInvalidTimeWindow  = errors.New("start time must be before end time")
	ErrInvalidLunchWindow = errors.New("lunch break must fall inside the work window")
	ErrHalfLunchWindow    = errors.New("lunch break needs both start and end times")
)

// WorkScheduleService manages recurring weekly open windows.
type WorkScheduleService interface {
	Create(ctx context.Context, req *dto.CreateWorkScheduleRequest, callerID string) (*dto.WorkScheduleResponse, error)
	GetByID(ctx context.Context, id string) (*dto.WorkScheduleResponse, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]dto.WorkScheduleResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateWorkScheduleRequest, callerID string) (*dto.WorkScheduleResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type workScheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewWorkScheduleService creates a WorkScheduleService instance.
func NewWorkScheduleService(repo *repository.Repository, logger *zap.Logger) WorkScheduleService {
	return &workScheduleService{repo: repo, logger: logger}
}

func (s *workScheduleService) Create(ctx context.Context, req *dto.CreateWorkScheduleRequest, callerID string) (*dto.WorkScheduleResponse, error) {
	if _, err := s.repo.Professional.GetByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, err
	}

	ws := &model.WorkSchedule{
		ProfessionalID: req.ProfessionalID,
		DayOfWeek:      req.DayOfWeek,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		LunchStartTime: req.LunchStartTime,
		LunchEndTime:   req.LunchEndTime,
	}
	if err := validateWindows(ws); err != nil {
		return nil, err
	}
	ws.CreatedBy = &callerID
	ws.UpdatedBy = &callerID

	if err := s.repo.WorkSchedule.Create(ctx, ws); err != nil {
		s.logger.Error("create work schedule failed", zap.Error(err))
		return nil, err
	}
	return toWorkScheduleResponse(ws), nil
}

func (s *workScheduleService) GetByID(ctx context.Context, id string) (*dto.WorkScheduleResponse, error) {
	ws, err := s.repo.WorkSchedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return toWorkScheduleResponse(ws), nil
}

func (s *workScheduleService) ListByProfessional(ctx context.Context, professionalID string) ([]dto.WorkScheduleResponse, error) {
	if _, err := s.repo.Professional.GetByID(ctx, professionalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, err
	}

	rows, err := s.repo.WorkSchedule.ListByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("list work schedules failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.WorkScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toWorkScheduleResponse(&rows[i]))
	}
	return out, nil
}

func (s *workScheduleService) Update(ctx context.Context, id string, req *dto.UpdateWorkScheduleRequest, callerID string) (*dto.WorkScheduleResponse, error) {
	ws, err := s.repo.WorkSchedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	if req.DayOfWeek != nil {
		ws.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		ws.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		ws.EndTime = *req.EndTime
	}
	if req.LunchStartTime != nil {
		ws.LunchStartTime = req.LunchStartTime
	}
	if req.LunchEndTime != nil {
		ws.LunchEndTime = req.LunchEndTime
	}
	if err := validateWindows(ws); err != nil {
		return nil, err
	}
	ws.UpdatedBy = &callerID

	if err := s.repo.WorkSchedule.Update(ctx, ws); err != nil {
		s.logger.Error("update work schedule failed", zap.Error(err))
		return nil, err
	}
	return toWorkScheduleResponse(ws), nil
}

func (s *workScheduleService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.WorkSchedule.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}
	return s.repo.WorkSchedule.Delete(ctx, id, callerID)
}

// validateWindows checks the work window and the optional lunch window.
// Lunch must either be absent or fully inside the work window.
func validateWindows(ws *model.WorkSchedule) error {
	work, err := scheduling.ParseInterval(ws.StartTime, ws.EndTime)
	if err != nil {
		return err
	}
	if work.Start >= work.End {
		return ErrInvalidTimeWindow
	}

	if (ws.LunchStartTime == nil) != (ws.LunchEndTime == nil) {
		return ErrHalfLunchWindow
	}
	if ws.HasLunchBreak() {
		lunch, err := scheduling.ParseInterval(*ws.LunchStartTime, *ws.LunchEndTime)
		if err != nil {
			return err
		}
		if lunch.Start >= lunch.End || lunch.Start < work.Start || lunch.End > work.End {
			return ErrInvalidLunchWindow
		}
	}
	return nil
}

func toWorkScheduleResponse(ws *model.WorkSchedule) *dto.WorkScheduleResponse {
	return &dto.WorkScheduleResponse{
		ID:             ws.WorkScheduleID,
		ProfessionalID: ws.ProfessionalID,
		DayOfWeek:      ws.DayOfWeek,
		StartTime:      ws.StartTime,
		EndTime:        ws.EndTime,
		LunchStartTime: ws.LunchStartTime,
		LunchEndTime:   ws.LunchEndTime,
	}
}
