package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const paymentColumns = `id, booking_id, amount, payment_status, transaction_id, created_at, updated_at`

const activePaymentIndex = "payments_one_active_per_booking_idx"

type PaymentRepository struct {
	store
}

func NewPaymentRepo(db *dbpg.DB, opts TxOptions) *PaymentRepository {
	return &PaymentRepository{store: newStore(db, opts)}
}

func scanPayment(row scanner) (*domain.Payment, error) {
	var p domain.Payment
	if err := row.Scan(
		&p.ID, &p.BookingID, &p.Amount, &p.Status,
		&p.TransactionID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateForBooking records a pending payment for the booking under the
// booking row lock. The payment carries a placeholder transaction id until
// the gateway issues one.
func (r *PaymentRepository) CreateForBooking(ctx context.Context, paymentID, bookingID int64) (*domain.Payment, error) {
	var p *domain.Payment
	err := r.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		b, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if b.Status == domain.BookingStatusCanceled {
			return fmt.Errorf("%w: booking %d is canceled", domain.ErrInvalidState, b.ID)
		}

		var exists bool
		existsQuery := `SELECT EXISTS (
							SELECT 1 FROM payments WHERE booking_id = $1 AND payment_status <> $2)`
		if err = tx.QueryRowContext(ctx, existsQuery, b.ID, domain.PaymentStatusFailed).Scan(&exists); err != nil {
			return classify(ctx, "check active payment", err)
		}
		if exists {
			return fmt.Errorf("%w: booking %d", domain.ErrAlreadyInitiated, b.ID)
		}

		query := `INSERT INTO payments (id, booking_id, amount, payment_status, transaction_id)
				  VALUES (COALESCE(NULLIF($1::bigint, 0), nextval(pg_get_serial_sequence('payments', 'id'))), $2, $3, $4, $5)
				  RETURNING ` + paymentColumns
		p, err = scanPayment(tx.QueryRowContext(ctx, query,
			paymentID, b.ID, b.TotalPrice, domain.PaymentStatusPending, domain.NewPlaceholderTransactionID()))
		if err != nil {
			err = classify(ctx, "insert payment", err)
			if isConstraint(err, activePaymentIndex) {
				return fmt.Errorf("%w: booking %d", domain.ErrAlreadyInitiated, b.ID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// AttachTransaction replaces the placeholder transaction id of a pending
// payment with the one issued by the gateway.
func (r *PaymentRepository) AttachTransaction(ctx context.Context, paymentID int64, transactionID string) (*domain.Payment, error) {
	var p *domain.Payment
	err := r.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		p, err = lockPayment(ctx, tx, `id = $1`, paymentID)
		if err != nil {
			return err
		}
		if !domain.IsPlaceholderTransactionID(p.TransactionID) {
			if p.TransactionID == transactionID {
				return nil
			}
			return fmt.Errorf("%w: payment %d already has transaction %s", domain.ErrInvalidState, p.ID, p.TransactionID)
		}

		query := `UPDATE payments
				  SET transaction_id = $2, updated_at = now()
				  WHERE id = $1
				  RETURNING ` + paymentColumns
		p, err = scanPayment(tx.QueryRowContext(ctx, query, paymentID, transactionID))
		if err != nil {
			return classify(ctx, "attach transaction", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Settle applies a gateway outcome to the payment with the given transaction
// id. The booking row is locked before the payment row, the same order a
// booking transition takes, so a cancel and a settlement never interleave.
// A successful payment confirms a booking that is still pending.
func (r *PaymentRepository) Settle(ctx context.Context, transactionID string, outcome domain.Outcome) (*domain.SettleResult, error) {
	var res *domain.SettleResult
	err := r.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var bookingID int64
		if err := tx.QueryRowContext(ctx, `SELECT booking_id FROM payments WHERE transaction_id = $1`, transactionID).
			Scan(&bookingID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: transaction %s", domain.ErrPaymentNotFound, transactionID)
			}
			return classify(ctx, "find payment", err)
		}

		b, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		p, err := lockPayment(ctx, tx, `transaction_id = $1`, transactionID)
		if err != nil {
			return err
		}

		res = &domain.SettleResult{Payment: p, Booking: b}
		changed, err := p.Settle(outcome)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		res.Changed = true

		query := `UPDATE payments
				  SET payment_status = $2, updated_at = now()
				  WHERE id = $1
				  RETURNING ` + paymentColumns
		if res.Payment, err = scanPayment(tx.QueryRowContext(ctx, query, p.ID, p.Status)); err != nil {
			return classify(ctx, "settle payment", err)
		}

		if p.Status == domain.PaymentStatusCompleted && b.Status == domain.BookingStatusPending {
			if err = b.TransitionTo(domain.BookingStatusConfirmed); err != nil {
				return err
			}
			if res.Booking, err = updateBookingStatus(ctx, tx, b.ID, b.Status); err != nil {
				return err
			}
			res.BookingConfirmed = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return r.get(ctx, `id = $1`, id)
}

func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	return r.get(ctx, `transaction_id = $1`, transactionID)
}

func (r *PaymentRepository) get(ctx context.Context, where string, arg any) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE ` + where

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, classify(ctx, "get payment", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, classify(ctx, "scan payment", err)
	}

	return p, nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE booking_id = $1
			  ORDER BY created_at, id`
	return r.list(ctx, "list payments by booking", query, bookingID)
}

// ListAwaitingGateway returns pending payments that already carry a gateway
// transaction id and are older than minAge, oldest first.
func (r *PaymentRepository) ListAwaitingGateway(ctx context.Context, minAge time.Duration, limit int) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE payment_status = $1
			    AND transaction_id NOT LIKE 'local-%'
			    AND created_at < now() - make_interval(secs => $2)
			  ORDER BY created_at
			  LIMIT $3`
	return r.list(ctx, "list awaiting payments", query, domain.PaymentStatusPending, minAge.Seconds(), limit)
}

// ListUnattached returns pending payments still carrying a placeholder
// transaction id after minAge, oldest first. These are payments whose
// gateway charge never got recorded.
func (r *PaymentRepository) ListUnattached(ctx context.Context, minAge time.Duration, limit int) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE payment_status = $1
			    AND transaction_id LIKE 'local-%'
			    AND created_at < now() - make_interval(secs => $2)
			  ORDER BY created_at
			  LIMIT $3`
	return r.list(ctx, "list unattached payments", query, domain.PaymentStatusPending, minAge.Seconds(), limit)
}

func (r *PaymentRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Payment, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, classify(ctx, op, err)
	}
	defer rows.Close()

	var res []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func lockPayment(ctx context.Context, tx *sql.Tx, where string, arg any) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE ` + where + ` FOR UPDATE`
	p, err := scanPayment(tx.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, classify(ctx, "lock payment", err)
	}
	return p, nil
}
