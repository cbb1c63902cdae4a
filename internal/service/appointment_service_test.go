package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"salon-agenda/internal/dto"
	"salon-agenda/internal/model"
	pkgerrors "salon-agenda/pkg/errors"
)

// futureWeekday returns the next date (at least a week out) falling on the
// given weekday, so bookings never trip the past-date check.
func futureWeekday(d time.Weekday) string {
	t := time.Now().AddDate(0, 0, 7)
	for t.Weekday() != d {
		t = t.AddDate(0, 0, 1)
	}
	return t.Format("2006-01-02")
}

func newAppointmentFixture(t *testing.T) (AppointmentService, string, string) {
	t.Helper()
	repo, _ := newTestRepository()
	profID, svcID := seedSalon(t, repo)
	return NewAppointmentService(repo, zap.NewNop()), profID, svcID
}

func TestCreateAppointment_DerivesEndTime(t *testing.T) {
	svc, profID, svcID := newAppointmentFixture(t)
	monday := futureWeekday(time.Monday)

	resp, err := svc.Create(context.Background(), "client-1", &dto.CreateAppointmentRequest{
		ProfessionalID: profID,
		ServiceID:      svcID,
		Date:           monday,
		StartTime:      "10:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.EndTime != "11:00" {
		t.Errorf("end time = %s, want 11:00", resp.EndTime)
	}
	if resp.Status != model.StatusScheduled {
		t.Errorf("status = %s, want scheduled", resp.Status)
	}
	// The stored DATE comes back as time.Time; the response must still be
	// the plain calendar day.
	if resp.Date != monday {
		t.Errorf("date = %s, want %s", resp.Date, monday)
	}
}

func TestCreateAppointment_OverlapIsRejected(t *testing.T) {
	svc, profID, svcID := newAppointmentFixture(t)
	monday := futureWeekday(time.Monday)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "client-1", &dto.CreateAppointmentRequest{
		ProfessionalID: profID, ServiceID: svcID, Date: monday, StartTime: "10:00",
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// A different start time whose interval still crosses 10:00-11:00 must
	// be refused; matching starts exactly is not enough.
	_, err := svc.Create(ctx, "client-2", &dto.CreateAppointmentRequest{
		ProfessionalID: profID, ServiceID: svcID, Date: monday, StartTime: "10:30",
	})
	if !errors.Is(err, pkgerrors.ErrSlotTaken) {
		t.Errorf("err = %v, want ErrSlotTaken", err)
	}
}

func TestCreateAppointment_OutsideWorkingHours(t *testing.T) {
	svc, profID, svcID := newAppointmentFixture(t)
	monday := futureWeekday(time.Monday)

	for _, start := range []string{"08:00", "17:30", "12:00"} {
		_, err := svc.Create(context.Background(), "client-1", &dto.CreateAppointmentRequest{
			ProfessionalID: profID, ServiceID: svcID, Date: monday, StartTime: start,
		})
		if !errors.Is(err, ErrOutsideWorkingHours) {
			t.Errorf("start %s: err = %v, want ErrOutsideWorkingHours", start, err)
		}
	}
}

func TestCreateAppointment_PastDate(t *testing.T) {
	svc, profID, svcID := newAppointmentFixture(t)

	_, err := svc.Create(context.Background(), "client-1", &dto.CreateAppointmentRequest{
		ProfessionalID: profID, ServiceID: svcID, Date: "2020-01-06", StartTime: "10:00",
	})
	if !errors.Is(err, ErrBookingInPast) {
		t.Errorf("err = %v, want ErrBookingInPast", err)
	}
}

func TestCreateAppointment_RebookAfterCancel(t *testing.T) {
	svc, profID, svcID := newAppointmentFixture(t)
	monday := futureWeekday(time.Monday)
	ctx := context.Background()

	first, err := svc.Create(ctx, "client-1", &dto.CreateAppointmentRequest{
		ProfessionalID: profID, ServiceID: svcID, Date: monday, StartTime: "10:00",
	})
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if err := svc.Cancel(ctx, first.ID, "client-1", "client"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := svc.Create(ctx, "client-2", &dto.CreateAppointmentRequest{
		ProfessionalID: profID, ServiceID: svcID, Date: monday, StartTime: "10:00",
	}); err != nil {
		t.Errorf("rebooking a cancelled slot: %v", err)
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	svc, profID, svcID := newAppointmentFixture(t)
	monday := futureWeekday(time.Monday)
	ctx := context.Background()

	created, err := svc.Create(ctx, "client-1", &dto.CreateAppointmentRequest{
		ProfessionalID: profID, ServiceID: svcID, Date: monday, StartTime: "14:00",
	})
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	resp, err := svc.UpdateStatus(ctx, created.ID, &dto.UpdateAppointmentStatusRequest{
		Status: model.StatusCompleted,
	}, "admin-1")
	if err != nil {
		t.Fatalf("scheduled -> completed: %v", err)
	}
	if resp.Status != model.StatusCompleted {
		t.Errorf("status = %s, want completed", resp.Status)
	}

	// Completed is terminal.
	_, err = svc.UpdateStatus(ctx, created.ID, &dto.UpdateAppointmentStatusRequest{
		Status: model.StatusCancelled,
	}, "admin-1")
	if !errors.Is(err, ErrBadStatusTransition) {
		t.Errorf("completed -> cancelled: err = %v, want ErrBadStatusTransition", err)
	}
}

func TestCancel_OwnershipEnforced(t *testing.T) {
	svc, profID, svcID := newAppointmentFixture(t)
	monday := futureWeekday(time.Monday)
	ctx := context.Background()

	created, err := svc.Create(ctx, "client-1", &dto.CreateAppointmentRequest{
		ProfessionalID: profID, ServiceID: svcID, Date: monday, StartTime: "15:00",
	})
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	if err := svc.Cancel(ctx, created.ID, "client-2", "client"); !errors.Is(err, ErrNotAppointmentOwner) {
		t.Errorf("other client: err = %v, want ErrNotAppointmentOwner", err)
	}
	if err := svc.Cancel(ctx, created.ID, "admin-1", "admin"); err != nil {
		t.Errorf("admin cancel: %v", err)
	}
}

func TestCreateAppointment_ServiceCrossingMidnight(t *testing.T) {
	repo, _ := newTestRepository()
	profID, svcID := seedSalon(t, repo)
	ctx := context.Background()

	// A late window plus a long service would push past midnight.
	ws := &model.WorkSchedule{
		ProfessionalID: profID,
		DayOfWeek:      int(time.Tuesday),
		StartTime:      "20:00",
		EndTime:        "23:59",
	}
	if err := repo.WorkSchedule.Create(ctx, ws); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	svc := NewAppointmentService(repo, zap.NewNop())

	_, err := svc.Create(ctx, "client-1", &dto.CreateAppointmentRequest{
		ProfessionalID: profID,
		ServiceID:      svcID,
		Date:           futureWeekday(time.Tuesday),
		StartTime:      "23:30",
	})
	if err == nil {
		t.Fatal("expected an error for a booking crossing midnight")
	}
}
