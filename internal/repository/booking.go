package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const bookingColumns = `id, listing_id, user_id, start_date, end_date, total_price, status, created_at, updated_at`

const overlapQuery = `SELECT EXISTS (
						  SELECT 1 FROM bookings
						  WHERE listing_id = $1
						    AND status = ANY($2)
						    AND start_date < $4::date
						    AND $3::date < end_date)`

type BookingRepository struct {
	store
}

func NewBookingRepo(db *dbpg.DB, opts TxOptions) *BookingRepository {
	return &BookingRepository{store: newStore(db, opts)}
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(
		&b.ID, &b.ListingID, &b.UserID, &b.StartDate, &b.EndDate,
		&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.StartDate = domain.TruncateDate(b.StartDate)
	b.EndDate = domain.TruncateDate(b.EndDate)
	return &b, nil
}

func activeStatuses() any {
	statuses := make([]string, 0, len(domain.ActiveStatuses))
	for _, st := range domain.ActiveStatuses {
		statuses = append(statuses, string(st))
	}
	return pq.StringArray(statuses)
}

// CreateIfAvailable inserts a pending booking unless an active booking of the
// listing overlaps the range. The listing row is locked for the duration of
// the check and the insert, so concurrent creations for one listing run one
// after another. The total is priced from the locked listing row.
func (r *BookingRepository) CreateIfAvailable(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error) {
	dr, err := domain.NewDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	start, end := dr.Start.Format(domain.DateLayout), dr.End.Format(domain.DateLayout)

	var b *domain.Booking
	err = r.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		l, err := lockListing(ctx, tx, in.ListingID)
		if err != nil {
			return err
		}

		var overlap bool
		if err = tx.QueryRowContext(ctx, overlapQuery, in.ListingID, activeStatuses(), start, end).
			Scan(&overlap); err != nil {
			return classify(ctx, "check overlap", err)
		}
		if overlap {
			return fmt.Errorf("%w: listing %d %s", domain.ErrUnavailable, in.ListingID, dr)
		}

		query := `INSERT INTO bookings (id, listing_id, user_id, start_date, end_date, total_price, status)
				  VALUES (COALESCE(NULLIF($1::bigint, 0), nextval(pg_get_serial_sequence('bookings', 'id'))),
				          $2, $3, $4::date, $5::date, $6, $7)
				  RETURNING ` + bookingColumns
		b, err = scanBooking(tx.QueryRowContext(ctx, query,
			in.ID, in.ListingID, in.UserID, start, end,
			domain.TotalPrice(l.PricePerNight, dr), domain.BookingStatusPending))
		if err != nil {
			return classify(ctx, "insert booking", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

// HasOverlap reports whether an active booking of the listing overlaps dr.
func (r *BookingRepository) HasOverlap(ctx context.Context, listingID int64, dr domain.DateRange) (bool, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, overlapQuery, listingID, activeStatuses(),
		dr.Start.Format(domain.DateLayout), dr.End.Format(domain.DateLayout))
	if err != nil {
		return false, classify(ctx, "check overlap", err)
	}

	var overlap bool
	if err = row.Scan(&overlap); err != nil {
		return false, classify(ctx, "check overlap", err)
	}
	return overlap, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, classify(ctx, "get booking", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, classify(ctx, "scan booking", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC, id DESC`
	return r.list(ctx, "list bookings by user", query, userID)
}

func (r *BookingRepository) ListByListing(ctx context.Context, listingID int64) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE listing_id = $1
			  ORDER BY start_date, id`
	return r.list(ctx, "list bookings by listing", query, listingID)
}

func (r *BookingRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, classify(ctx, op, err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// Transition moves a booking to target under its row lock. It returns the
// updated booking and the status it had before.
func (r *BookingRepository) Transition(
	ctx context.Context,
	bookingID int64,
	target domain.BookingStatus,
) (*domain.Booking, domain.BookingStatus, error) {
	var (
		b    *domain.Booking
		prev domain.BookingStatus
	)
	err := r.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		b, err = lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		prev = b.Status
		if err = b.TransitionTo(target); err != nil {
			return fmt.Errorf("booking %d: %w", bookingID, err)
		}
		b, err = updateBookingStatus(ctx, tx, b.ID, b.Status)
		return err
	})
	if err != nil {
		return nil, "", err
	}

	return b, prev, nil
}

func lockBooking(ctx context.Context, tx *sql.Tx, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, classify(ctx, "lock booking", err)
	}
	return b, nil
}

func updateBookingStatus(ctx context.Context, tx *sql.Tx, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + bookingColumns
	b, err := scanBooking(tx.QueryRowContext(ctx, query, id, status))
	if err != nil {
		return nil, classify(ctx, "update booking status", err)
	}
	return b, nil
}
