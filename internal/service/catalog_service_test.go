package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"salon-agenda/internal/dto"
)

func TestCatalogCreateAndGet(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewCatalogService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateServiceRequest{
		Name:     "Haircut",
		Duration: 60,
		Price:    80,
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.Active {
		t.Error("new services should start active")
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Haircut" || got.Duration != 60 || got.Price != 80 {
		t.Errorf("got %+v", got)
	}

	if _, err := svc.GetByID(ctx, "missing"); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("err = %v, want ErrServiceNotFound", err)
	}
}

func TestCatalogUpdate_PatchesOnlyGivenFields(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewCatalogService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateServiceRequest{
		Name: "Haircut", Duration: 60, Price: 80,
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newPrice := 95.0
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateServiceRequest{
		Price: &newPrice,
	}, "admin-1")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Price != 95 {
		t.Errorf("price = %v, want 95", updated.Price)
	}
	if updated.Name != "Haircut" || updated.Duration != 60 {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	if _, err := svc.Update(ctx, "missing", &dto.UpdateServiceRequest{}, "admin-1"); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("err = %v, want ErrServiceNotFound", err)
	}
}

func TestCatalogList_HidesInactiveByDefault(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewCatalogService(repo, zap.NewNop())
	ctx := context.Background()

	active, err := svc.Create(ctx, &dto.CreateServiceRequest{
		Name: "Haircut", Duration: 60, Price: 80,
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	retired, err := svc.Create(ctx, &dto.CreateServiceRequest{
		Name: "Perm", Duration: 120, Price: 150,
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	off := false
	if _, err := svc.Update(ctx, retired.ID, &dto.UpdateServiceRequest{Active: &off}, "admin-1"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	list, err := svc.List(ctx, false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != active.ID {
		t.Errorf("default list = %+v, want only the active service", list)
	}

	all, err := svc.List(ctx, true)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("full list has %d entries, want 2", len(all))
	}
}

func TestCatalogListProfessionals(t *testing.T) {
	repo, _ := newTestRepository()
	profID, svcID := seedSalon(t, repo)
	svc := NewCatalogService(repo, zap.NewNop())
	ctx := context.Background()

	profs, err := svc.ListProfessionals(ctx, svcID)
	if err != nil {
		t.Fatalf("ListProfessionals: %v", err)
	}
	if len(profs) != 1 || profs[0].ID != profID {
		t.Errorf("profs = %+v, want the seeded professional", profs)
	}

	if _, err := svc.ListProfessionals(ctx, "missing"); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("err = %v, want ErrServiceNotFound", err)
	}
}
