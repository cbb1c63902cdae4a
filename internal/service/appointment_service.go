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
	"salon-agenda/internal/scheduling"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrOutsideWorkingHours = errors.New("requested time falls outside the professional's working hours")
	ErrBookingInPast       = errors.New("cannot book an appointment in the past")
	ErrBadStatusTransition = errors.New("status transition not allowed")
	ErrNotAppointmentOwner = errors.New("appointment belongs to another user")
)

// AppointmentService covers booking and the appointment lifecycle.
type AppointmentService interface {
	Create(ctx context.Context, userID string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id string, callerID, callerRole string) (*dto.AppointmentResponse, error)
	ListByUser(ctx context.Context, userID string) ([]dto.AppointmentResponse, error)
	List(ctx context.Context, req *dto.AppointmentListRequest) ([]dto.AppointmentResponse, int64, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateAppointmentStatusRequest, callerID string) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id string, callerID, callerRole string) error
}

type appointmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAppointmentService creates an AppointmentService instance.
func NewAppointmentService(repo *repository.Repository, logger *zap.Logger) AppointmentService {
	return &appointmentService{repo: repo, logger: logger}
}

func (s *appointmentService) Create(ctx context.Context, userID string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	prof, err := s.repo.Professional.GetByID(ctx, req.ProfessionalID)
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

	if _, err := s.repo.ProfessionalService.GetLink(ctx, req.ProfessionalID, req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotOffered
		}
		return nil, err
	}

	day, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}
	if day.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, ErrBookingInPast
	}

	// End time is derived from the service duration; an appointment that
	// would cross midnight is rejected outright.
	endTime, err := scheduling.AddMinutes(req.StartTime, svc.Duration)
	if err != nil {
		return nil, err
	}
	requested, err := scheduling.ParseInterval(req.StartTime, endTime)
	if err != nil {
		return nil, err
	}

	if err := s.checkWorkingHours(ctx, req.ProfessionalID, int(day.Weekday()), requested); err != nil {
		return nil, err
	}

	appt := &model.Appointment{
		UserID:         userID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           day,
		StartTime:      req.StartTime,
		EndTime:        endTime,
		Status:         model.StatusScheduled,
		Notes:          req.Notes,
	}
	appt.CreatedBy = &userID
	appt.UpdatedBy = &userID

	// The overlap re-check runs inside the insert transaction, so a slot
	// that looked free in the availability read can still be refused here.
	if err := s.repo.Appointment.CreateIfFree(ctx, appt); err != nil {
		return nil, err
	}

	appt.Professional = prof
	appt.Service = svc
	return toAppointmentResponse(appt), nil
}

// checkWorkingHours verifies the requested interval sits inside one weekly
// window and clears its lunch break.
func (s *appointmentService) checkWorkingHours(ctx context.Context, professionalID string, dayOfWeek int, requested scheduling.Interval) error {
	windows, err := s.repo.WorkSchedule.ListByProfessionalAndDay(ctx, professionalID, dayOfWeek)
	if err != nil {
		s.logger.Error("load work schedules failed", zap.Error(err))
		return err
	}

	for i := range windows {
		window, err := scheduling.ParseInterval(windows[i].StartTime, windows[i].EndTime)
		if err != nil {
			return err
		}
		if requested.Start < window.Start || requested.End > window.End {
			continue
		}
		if windows[i].HasLunchBreak() {
			lunch, err := scheduling.ParseInterval(*windows[i].LunchStartTime, *windows[i].LunchEndTime)
			if err != nil {
				return err
			}
			if requested.Overlaps(lunch) {
				continue
			}
		}
		return nil
	}
	return ErrOutsideWorkingHours
}

func (s *appointmentService) GetByID(ctx context.Context, id string, callerID, callerRole string) (*dto.AppointmentResponse, error) {
	appt, err := s.repo.Appointment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if callerRole != "admin" && appt.UserID != callerID {
		return nil, ErrNotAppointmentOwner
	}
	return toAppointmentResponse(appt), nil
}

func (s *appointmentService) ListByUser(ctx context.Context, userID string) ([]dto.AppointmentResponse, error) {
	appts, err := s.repo.Appointment.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list appointments failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		out = append(out, *toAppointmentResponse(&appts[i]))
	}
	return out, nil
}

func (s *appointmentService) List(ctx context.Context, req *dto.AppointmentListRequest) ([]dto.AppointmentResponse, int64, error) {
	filter := repository.AppointmentFilter{
		ProfessionalID: req.ProfessionalID,
		Status:         req.Status,
		Offset:         req.GetOffset(),
		Limit:          req.GetPageSize(),
	}
	if req.Date != "" {
		day, err := parseDay(req.Date)
		if err != nil {
			return nil, 0, err
		}
		filter.Date = day
	}

	appts, total, err := s.repo.Appointment.List(ctx, filter)
	if err != nil {
		s.logger.Error("list appointments failed", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		out = append(out, *toAppointmentResponse(&appts[i]))
	}
	return out, total, nil
}

// allowedTransitions: scheduled is the only non-terminal status. Cancelled
// and no-show rows release their slot, so reviving them would need a fresh
// conflict check; rebooking is a new appointment instead.
var allowedTransitions = map[string][]string{
	model.StatusScheduled: {model.StatusCompleted, model.StatusCancelled, model.StatusNoShow},
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateAppointmentStatusRequest, callerID string) (*dto.AppointmentResponse, error) {
	appt, err := s.repo.Appointment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	if !transitionAllowed(appt.Status, req.Status) {
		return nil, ErrBadStatusTransition
	}

	appt.Status = req.Status
	appt.UpdatedBy = &callerID
	if err := s.repo.Appointment.UpdateStatus(ctx, appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

func (s *appointmentService) Cancel(ctx context.Context, id string, callerID, callerRole string) error {
	appt, err := s.repo.Appointment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}
	if callerRole != "admin" && appt.UserID != callerID {
		return ErrNotAppointmentOwner
	}
	if !transitionAllowed(appt.Status, model.StatusCancelled) {
		return ErrBadStatusTransition
	}

	appt.Status = model.StatusCancelled
	appt.UpdatedBy = &callerID
	return s.repo.Appointment.UpdateStatus(ctx, appt)
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// clockHHMM trims the seconds the TIME columns read back with.
func clockHHMM(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

func toAppointmentResponse(a *model.Appointment) *dto.AppointmentResponse {
	resp := &dto.AppointmentResponse{
		ID:        a.AppointmentID,
		UserID:    a.UserID,
		Date:      a.Date.Format("2006-01-02"),
		StartTime: clockHHMM(a.StartTime),
		EndTime:   clockHHMM(a.EndTime),
		Status:    a.Status,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
	if a.Professional != nil {
		resp.Professional = &dto.ProfessionalBrief{
			ID:   a.Professional.ProfessionalID,
			Name: a.Professional.Name,
		}
	}
	if a.Service != nil {
		resp.Service = &dto.ServiceBrief{
			ID:       a.Service.ServiceID,
			Name:     a.Service.Name,
			Duration: a.Service.Duration,
			Price:    a.Service.Price,
		}
	}
	return resp
}
