package venue

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"clubradar/internal/domain"
	"clubradar/internal/repository"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:venue_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Venue{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(repository.NewVenueRepository(db), nil)
}

func TestRegisterStartsPending(t *testing.T) {
	svc := setupTestService(t)

	v, err := svc.Register(context.Background(), 10, RegisterVenueRequest{
		Name:              "Neon Nights",
		City:              "Mumbai",
		BankAccountNumber: "001122334455",
		IFSCCode:          "HDFC0001234",
		AccountHolderName: "Neon Nights Pvt Ltd",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if v.Status != domain.VenuePending {
		t.Fatalf("expected pending status, got %s", v.Status)
	}
	if v.OwnerID != 10 {
		t.Fatalf("expected owner 10, got %d", v.OwnerID)
	}
}

func TestApproveAndRejectFlow(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	v, err := svc.Register(ctx, 10, RegisterVenueRequest{
		Name:              "Neon Nights",
		City:              "Mumbai",
		BankAccountNumber: "001122334455",
		IFSCCode:          "HDFC0001234",
		AccountHolderName: "Neon Nights Pvt Ltd",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	approved, err := svc.Approve(ctx, v.ID)
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if approved.Status != domain.VenueApproved {
		t.Fatalf("expected approved status, got %s", approved.Status)
	}

	rejected, err := svc.Reject(ctx, v.ID, "incomplete bank details")
	if err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	if rejected.Status != domain.VenueRejected {
		t.Fatalf("expected rejected status, got %s", rejected.Status)
	}
	if rejected.RejectedReason != "incomplete bank details" {
		t.Fatalf("expected reason stored, got %q", rejected.RejectedReason)
	}
}

func TestRejectRequiresReason(t *testing.T) {
	svc := setupTestService(t)
	_, err := svc.Reject(context.Background(), 1, "   ")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateOwnershipCheck(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	v, err := svc.Register(ctx, 10, RegisterVenueRequest{
		Name:              "Neon Nights",
		City:              "Mumbai",
		BankAccountNumber: "001122334455",
		IFSCCode:          "HDFC0001234",
		AccountHolderName: "Neon Nights Pvt Ltd",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	name := "Neon Nights 2.0"
	if _, err := svc.Update(ctx, v.ID, 99, UpdateVenueRequest{Name: &name}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(ctx, v.ID, 10, UpdateVenueRequest{Name: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Neon Nights 2.0" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
}

func TestGetVenueNotFound(t *testing.T) {
	svc := setupTestService(t)
	_, err := svc.GetByID(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
