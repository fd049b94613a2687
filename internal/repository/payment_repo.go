package repository

import (
	"context"
	"fmt"

	"survey_platform/internal/model"
)

// PaymentRepository defines operations for payment data
type PaymentRepository interface {
	// CreateAndPromote inserts the payment and sets the payer's role to prouser
	// in one transaction. It returns the number of users promoted.
	CreateAndPromote(ctx context.Context, p *model.Payment) (int64, error)
	FindAll(ctx context.Context) ([]model.Payment, error)
}

type paymentRepository struct {
	db Pool
}

func NewPaymentRepository(db Pool) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateAndPromote(ctx context.Context, p *model.Payment) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin payment transaction: %w", err)
	}

	sql := `INSERT INTO payments (id, email, name, amount, transaction_id, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, sql, p.ID, p.Email, p.Name, p.Amount, p.TransactionID, p.CreatedAt); err != nil {
		_ = tx.Rollback(ctx)
		return 0, fmt.Errorf("failed to create payment: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `UPDATE users SET role = $1 WHERE email = $2`, string(model.RoleProUser), p.Email)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, fmt.Errorf("failed to promote payer: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit payment: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]model.Payment, error) {
	rows, err := r.db.Query(ctx, `SELECT id, email, name, amount, transaction_id, created_at FROM payments ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []model.Payment{}
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.Email, &p.Name, &p.Amount, &p.TransactionID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}
