package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"salon-agenda/internal/dto"
)

func TestTransactionSummary(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewTransactionService(repo, zap.NewNop())
	ctx := context.Background()

	seed := []dto.CreateTransactionRequest{
		{Type: "income", Amount: 80, Description: "Haircut", Date: "2026-09-07"},
		{Type: "income", Amount: 50, Description: "Manicure", Date: "2026-09-08"},
		{Type: "expense", Amount: 30, Description: "Supplies", Date: "2026-09-08"},
		{Type: "income", Amount: 100, Description: "Coloring", Date: "2026-10-01"}, // outside period
	}
	for i := range seed {
		if _, err := svc.Create(ctx, &seed[i], "admin-1"); err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}

	summary, err := svc.Summarize(ctx, &dto.TransactionSummaryRequest{
		From: "2026-09-01",
		To:   "2026-09-30",
	})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.Income != 130 {
		t.Errorf("income = %v, want 130", summary.Income)
	}
	if summary.Expense != 30 {
		t.Errorf("expense = %v, want 30", summary.Expense)
	}
	if summary.Balance != 100 {
		t.Errorf("balance = %v, want 100", summary.Balance)
	}
}

func TestTransactionCreate_UnknownAppointment(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewTransactionService(repo, zap.NewNop())

	apptID := "missing"
	_, err := svc.Create(context.Background(), &dto.CreateTransactionRequest{
		AppointmentID: &apptID,
		Type:          "income",
		Amount:        80,
		Description:   "Haircut",
		Date:          "2026-09-07",
	}, "admin-1")
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("err = %v, want ErrAppointmentNotFound", err)
	}
}

func TestTransactionUpdateAndDelete(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewTransactionService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateTransactionRequest{
		Type: "income", Amount: 80, Description: "Haircut", Date: "2026-09-07",
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Date != "2026-09-07" {
		t.Errorf("date = %s, want 2026-09-07", created.Date)
	}

	newAmount := 90.0
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateTransactionRequest{
		Amount: &newAmount,
	}, "admin-1")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Amount != 90 {
		t.Errorf("amount = %v, want 90", updated.Amount)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("err = %v, want ErrTransactionNotFound", err)
	}
}
