package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"salon-agenda/config"
	"salon-agenda/internal/dto"
	"salon-agenda/internal/model"
	"salon-agenda/internal/repository"
	"salon-agenda/internal/scheduling"
)

var (
	ErrProfessionalInactive = errors.New("professional is not active")
	ErrServiceInactive      = errors.New("service is not active")
	ErrServiceNotOffered    = errors.New("professional does not offer this service")
	ErrInvalidDate          = errors.New("date must be in YYYY-MM-DD format")
)

// parseDay converts a "YYYY-MM-DD" request field to the UTC midnight the
// DATE columns round-trip as.
func parseDay(s string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

// AvailabilityService computes the open slots of one professional on one day.
//
// The result is advisory: between reading it and booking, another client may
// take a slot. The booking path re-checks inside a transaction.
type AvailabilityService interface {
	GetAvailableSlots(ctx context.Context, professionalID string, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error)
}

type availabilityService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAvailabilityService creates an AvailabilityService instance.
func NewAvailabilityService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) AvailabilityService {
	return &availabilityService{cfg: cfg, repo: repo, logger: logger}
}

func (s *availabilityService) GetAvailableSlots(ctx context.Context, professionalID string, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error) {
	prof, err := s.repo.Professional.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, err
	}
	if !prof.Active {
		return nil, ErrProfessionalInactive
	}

	svc, err := s.repo.Service.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if !svc.Active {
		return nil, ErrServiceInactive
	}

	if _, err := s.repo.ProfessionalService.GetLink(ctx, professionalID, req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotOffered
		}
		return nil, err
	}

	day, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}

	windows, err := s.repo.WorkSchedule.ListByProfessionalAndDay(ctx, professionalID, int(day.Weekday()))
	if err != nil {
		s.logger.Error("load work schedules failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.AvailabilityResponse{
		ProfessionalID: professionalID,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Slots:          []string{},
	}
	if len(windows) == 0 {
		return resp, nil // not working that day
	}

	appts, err := s.repo.Appointment.ListByProfessionalAndDate(ctx, professionalID, day, model.OccupyingStatuses)
	if err != nil {
		s.logger.Error("load appointments failed", zap.Error(err))
		return nil, err
	}

	busy := make([]scheduling.Interval, 0, len(appts)+len(windows))
	for i := range appts {
		iv, err := scheduling.ParseInterval(appts[i].StartTime, appts[i].EndTime)
		if err != nil {
			s.logger.Error("stored appointment has a bad time",
				zap.String("appointment_id", appts[i].AppointmentID), zap.Error(err))
			return nil, err
		}
		busy = append(busy, iv)
	}
	for i := range windows {
		if !windows[i].HasLunchBreak() {
			continue
		}
		iv, err := scheduling.ParseInterval(*windows[i].LunchStartTime, *windows[i].LunchEndTime)
		if err != nil {
			return nil, err
		}
		busy = append(busy, iv)
	}

	step := s.cfg.Booking.SlotIntervalMinutes
	lists := make([][]int, 0, len(windows))
	for i := range windows {
		window, err := scheduling.ParseInterval(windows[i].StartTime, windows[i].EndTime)
		if err != nil {
			return nil, err
		}
		lists = append(lists, scheduling.SlotStarts(window, svc.Duration, step, busy))
	}

	resp.Slots = scheduling.MergeSlotStarts(lists...)
	return resp, nil
}
