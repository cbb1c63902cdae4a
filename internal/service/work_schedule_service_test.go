package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"salon-agenda/internal/dto"
	"salon-agenda/internal/model"
	"salon-agenda/internal/repository"
)

func newWorkScheduleFixture(t *testing.T) (WorkScheduleService, *repository.Repository, string) {
	t.Helper()
	repo, _ := newTestRepository()
	prof := &model.Professional{Name: "Ana", Active: true}
	if err := repo.Professional.Create(context.Background(), prof); err != nil {
		t.Fatalf("seed professional: %v", err)
	}
	return NewWorkScheduleService(repo, zap.NewNop()), repo, prof.ProfessionalID
}

func TestCreateWorkSchedule(t *testing.T) {
	svc, _, profID := newWorkScheduleFixture(t)

	resp, err := svc.Create(context.Background(), &dto.CreateWorkScheduleRequest{
		ProfessionalID: profID,
		DayOfWeek:      2,
		StartTime:      "09:00",
		EndTime:        "18:00",
		LunchStartTime: strPtr("12:00"),
		LunchEndTime:   strPtr("13:00"),
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.DayOfWeek != 2 || resp.StartTime != "09:00" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCreateWorkSchedule_Validation(t *testing.T) {
	svc, _, profID := newWorkScheduleFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.CreateWorkScheduleRequest
		want error
	}{
		{
			name: "inverted window",
			req: dto.CreateWorkScheduleRequest{
				ProfessionalID: profID, DayOfWeek: 1,
				StartTime: "18:00", EndTime: "09:00",
			},
			want: ErrInvalidTimeWindow,
		},
		{
			name: "lunch outside window",
			req: dto.CreateWorkScheduleRequest{
				ProfessionalID: profID, DayOfWeek: 1,
				StartTime: "09:00", EndTime: "18:00",
				LunchStartTime: strPtr("08:00"), LunchEndTime: strPtr("09:30"),
			},
			want: ErrInvalidLunchWindow,
		},
		{
			name: "lunch missing end",
			req: dto.CreateWorkScheduleRequest{
				ProfessionalID: profID, DayOfWeek: 1,
				StartTime: "09:00", EndTime: "18:00",
				LunchStartTime: strPtr("12:00"),
			},
			want: ErrHalfLunchWindow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, &tc.req, "admin-1"); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCreateWorkSchedule_UnknownProfessional(t *testing.T) {
	svc, _, _ := newWorkScheduleFixture(t)

	_, err := svc.Create(context.Background(), &dto.CreateWorkScheduleRequest{
		ProfessionalID: "missing",
		DayOfWeek:      1,
		StartTime:      "09:00",
		EndTime:        "18:00",
	}, "admin-1")
	if !errors.Is(err, ErrProfessionalNotFound) {
		t.Errorf("err = %v, want ErrProfessionalNotFound", err)
	}
}

func TestUpdateWorkSchedule_RevalidatesWindow(t *testing.T) {
	svc, _, profID := newWorkScheduleFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateWorkScheduleRequest{
		ProfessionalID: profID,
		DayOfWeek:      3,
		StartTime:      "09:00",
		EndTime:        "18:00",
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(ctx, created.ID, &dto.UpdateWorkScheduleRequest{
		EndTime: strPtr("08:00"),
	}, "admin-1")
	if !errors.Is(err, ErrInvalidTimeWindow) {
		t.Errorf("err = %v, want ErrInvalidTimeWindow", err)
	}
}
