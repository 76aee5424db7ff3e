package gateway_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"payment-gateway/gateway"
	"payment-gateway/gateway/models"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// TestPGRepository exercises the Postgres backend against a real database.
// Skips unless REPO_BACKEND=pg and DB_DSN are provided.
func TestPGRepository(t *testing.T) {
	if os.Getenv("REPO_BACKEND") != "pg" {
		t.Skip("REPO_BACKEND != pg; skipping DB integration test")
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN not set; skipping DB integration test")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		t.Fatalf("ping db: %v", err)
	}

	ctx := context.Background()
	repo := gateway.NewPGRepository(db)

	merchant := &models.Merchant{ID: uuid.New().String(), Name: "integration"}
	if err := repo.SaveMerchant(ctx, merchant); err != nil {
		t.Fatalf("save merchant: %v", err)
	}

	payment := &models.Payment{
		ID:             uuid.New().String(),
		MerchantID:     merchant.ID,
		Status:         models.PaymentStatusAuthorized,
		LastFourDigits: "8879",
		ExpiryMonth:    12,
		ExpiryYear:     2030,
		Currency:       "USD",
		Amount:         100,
	}
	if err := repo.SavePayment(ctx, payment); err != nil {
		t.Fatalf("save payment: %v", err)
	}

	// a duplicate id must surface as a conflict, not a silent overwrite
	if err := repo.SavePayment(ctx, payment); err != gateway.ErrConflict {
		t.Fatalf("duplicate payment id: got %v, want ErrConflict", err)
	}

	got, err := repo.PaymentByIDs(ctx, merchant.ID, payment.ID)
	if err != nil {
		t.Fatalf("payment by ids: %v", err)
	}
	if *got != *payment {
		t.Fatalf("payment mismatch: got %+v want %+v", got, payment)
	}

	byMerchant, err := repo.PaymentsByMerchant(ctx, merchant.ID)
	if err != nil {
		t.Fatalf("payments by merchant: %v", err)
	}
	if len(byMerchant) != 1 {
		t.Fatalf("payments by merchant: got %d records, want 1", len(byMerchant))
	}
}
