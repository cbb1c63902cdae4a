package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"salon-agenda/internal/repository"
	"salon-agenda/internal/scheduling"
)

// CalendarService renders a professional's upcoming agenda as an iCalendar
// (RFC 5545) feed, suitable for subscribing from a phone calendar.
type CalendarService interface {
	ProfessionalFeed(ctx context.Context, professionalID string) (string, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService creates a CalendarService instance.
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

func (s *calendarService) ProfessionalFeed(ctx context.Context, professionalID string) (string, error) {
	prof, err := s.repo.Professional.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrProfessionalNotFound
		}
		return "", err
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	appts, err := s.repo.Appointment.ListUpcomingByProfessional(ctx, professionalID, today)
	if err != nil {
		s.logger.Error("load appointments failed", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//salon-agenda//EN")
	cal.SetName(prof.Name + " - agenda")

	for i := range appts {
		a := &appts[i]
		startMin, err := scheduling.ParseClock(a.StartTime)
		if err != nil {
			s.logger.Warn("skipping appointment with a bad timestamp",
				zap.String("appointment_id", a.AppointmentID), zap.Error(err))
			continue
		}
		endMin, err := scheduling.ParseClock(a.EndTime)
		if err != nil {
			continue
		}
		start := a.Date.Add(time.Duration(startMin) * time.Minute)
		end := a.Date.Add(time.Duration(endMin) * time.Minute)

		summary := "Appointment"
		if a.Service != nil {
			summary = a.Service.Name
		}
		if a.User != nil {
			summary = fmt.Sprintf("%s - %s", summary, a.User.Name)
		}

		event := cal.AddEvent(a.AppointmentID + "@salon-agenda")
		event.SetSummary(summary)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetDtStampTime(time.Now())
		if a.Notes != nil {
			event.SetDescription(*a.Notes)
		}
	}

	return cal.Serialize(), nil
}
