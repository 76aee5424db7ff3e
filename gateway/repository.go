package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"payment-gateway/gateway/models"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"
)

var (
	ErrNotFound = fmt.Errorf("not found")
	ErrConflict = fmt.Errorf("conflict")
)

// Repository stores payments and merchants. The default backend is an
// in-memory one guarded by a mutex; payment processing handles concurrent
// requests, so the store must tolerate concurrent writers. A Postgres
// backend is used instead when constructed with NewPGRepository.
type Repository struct {
	payments  []*models.Payment
	merchants []*models.Merchant

	mu sync.RWMutex
	db *sql.DB
}

func NewRepository() *Repository {
	return &Repository{
		payments:  make([]*models.Payment, 0),
		merchants: make([]*models.Merchant, 0),
	}
}

// NewPGRepository constructs a db-backed repository.
func NewPGRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) SavePayment(ctx context.Context, payment *models.Payment) error {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.payments = append(r.payments, payment)
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO gateway.payments(payment_id, merchant_id, status, last_four_digits, expiry_month, expiry_year, currency, amount)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, payment.ID, payment.MerchantID, string(payment.Status), payment.LastFourDigits,
		payment.ExpiryMonth, payment.ExpiryYear, payment.Currency, payment.Amount)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *Repository) AllPayments(ctx context.Context) ([]*models.Payment, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		out := make([]*models.Payment, len(r.payments))
		copy(out, r.payments)
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `
        SELECT payment_id, merchant_id, status, last_four_digits, expiry_month, expiry_year, currency, amount
          FROM gateway.payments ORDER BY created_at
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *Repository) PaymentsByMerchant(ctx context.Context, merchantID string) ([]*models.Payment, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		var payments []*models.Payment
		for _, p := range r.payments {
			if p.MerchantID == merchantID {
				payments = append(payments, p)
			}
		}
		return payments, nil
	}
	rows, err := r.db.QueryContext(ctx, `
        SELECT payment_id, merchant_id, status, last_four_digits, expiry_month, expiry_year, currency, amount
          FROM gateway.payments WHERE merchant_id=$1 ORDER BY created_at
    `, merchantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *Repository) PaymentByIDs(ctx context.Context, merchantID, paymentID string) (*models.Payment, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		for _, p := range r.payments {
			if p.ID == paymentID && p.MerchantID == merchantID {
				return p, nil
			}
		}
		return nil, ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
        SELECT payment_id, merchant_id, status, last_four_digits, expiry_month, expiry_year, currency, amount
          FROM gateway.payments WHERE payment_id=$1 AND merchant_id=$2
    `, paymentID, merchantID)
	payment, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return payment, nil
}

func (r *Repository) SaveMerchant(ctx context.Context, merchant *models.Merchant) error {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.merchants = append(r.merchants, merchant)
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO gateway.merchants(merchant_id, name) VALUES ($1,$2)
    `, merchant.ID, merchant.Name)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *Repository) AllMerchants(ctx context.Context) ([]*models.Merchant, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		out := make([]*models.Merchant, len(r.merchants))
		copy(out, r.merchants)
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `SELECT merchant_id, name FROM gateway.merchants ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var merchants []*models.Merchant
	for rows.Next() {
		m := models.Merchant{}
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		merchants = append(merchants, &m)
	}
	return merchants, rows.Err()
}

// Ping returns DB readiness; the in-memory backend is always ready.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	p := models.Payment{}
	var status string
	if err := row.Scan(&p.ID, &p.MerchantID, &status, &p.LastFourDigits,
		&p.ExpiryMonth, &p.ExpiryYear, &p.Currency, &p.Amount); err != nil {
		return nil, err
	}
	p.Status = models.PaymentStatus(status)
	return &p, nil
}

func scanPayments(rows *sql.Rows) ([]*models.Payment, error) {
	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return false
}
