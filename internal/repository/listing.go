package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const listingColumns = `id, host_id, name, description, location, price_per_night, created_at, updated_at`

type ListingRepository struct {
	store
}

func NewListingRepo(db *dbpg.DB, opts TxOptions) *ListingRepository {
	return &ListingRepository{store: newStore(db, opts)}
}

func scanListing(row scanner) (*domain.Listing, error) {
	var l domain.Listing
	if err := row.Scan(
		&l.ID, &l.HostID, &l.Name, &l.Description,
		&l.Location, &l.PricePerNight, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a listing. A zero ID lets the store assign one.
func (r *ListingRepository) Create(ctx context.Context, in domain.CreateListingInput) (*domain.Listing, error) {
	query := `INSERT INTO listings (id, host_id, name, description, location, price_per_night)
			  VALUES (COALESCE(NULLIF($1::bigint, 0), nextval(pg_get_serial_sequence('listings', 'id'))), $2, $3, $4, $5, $6)
			  RETURNING ` + listingColumns

	var l *domain.Listing
	err := r.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		l, err = scanListing(tx.QueryRowContext(ctx, query,
			in.ID, in.HostID, in.Name, in.Description, in.Location, in.PricePerNight))
		if err != nil {
			return classify(ctx, "insert listing", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return l, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, classify(ctx, "get listing", err)
	}

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, classify(ctx, "scan listing", err)
	}

	return l, nil
}

func (r *ListingRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, classify(ctx, "list listings", err)
	}
	defer rows.Close()

	var res []*domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

// Update locks the listing, checks ownership and applies the set fields.
func (r *ListingRepository) Update(ctx context.Context, in domain.UpdateListingInput) (*domain.Listing, error) {
	var l *domain.Listing
	err := r.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		l, err = lockListing(ctx, tx, in.ListingID)
		if err != nil {
			return err
		}
		if l.HostID != in.HostID {
			return fmt.Errorf("%w: listing %d belongs to another host", domain.ErrForbidden, l.ID)
		}
		if err = in.Apply(l); err != nil {
			return err
		}

		query := `UPDATE listings
				  SET name = $2, description = $3, location = $4, price_per_night = $5, updated_at = now()
				  WHERE id = $1
				  RETURNING ` + listingColumns
		l, err = scanListing(tx.QueryRowContext(ctx, query,
			l.ID, l.Name, l.Description, l.Location, l.PricePerNight))
		if err != nil {
			return classify(ctx, "update listing", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return l, nil
}

// Delete removes the listing with its payments, bookings and reviews.
func (r *ListingRepository) Delete(ctx context.Context, listingID, hostID int64) error {
	return r.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		l, err := lockListing(ctx, tx, listingID)
		if err != nil {
			return err
		}
		if l.HostID != hostID {
			return fmt.Errorf("%w: listing %d belongs to another host", domain.ErrForbidden, l.ID)
		}
		// bookings before payments, the order Settle locks them in
		if err = lockListingBookings(ctx, tx, listingID); err != nil {
			return err
		}

		stmts := []struct {
			op    string
			query string
		}{
			{"delete payments", `DELETE FROM payments
								 WHERE booking_id IN (SELECT id FROM bookings WHERE listing_id = $1)`},
			{"delete bookings", `DELETE FROM bookings WHERE listing_id = $1`},
			{"delete reviews", `DELETE FROM reviews WHERE listing_id = $1`},
			{"delete listing", `DELETE FROM listings WHERE id = $1`},
		}
		for _, st := range stmts {
			if _, err = tx.ExecContext(ctx, st.query, listingID); err != nil {
				return classify(ctx, st.op, err)
			}
		}
		return nil
	})
}

func lockListingBookings(ctx context.Context, tx *sql.Tx, listingID int64) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM bookings WHERE listing_id = $1 ORDER BY id FOR UPDATE`, listingID)
	if err != nil {
		return classify(ctx, "lock listing bookings", err)
	}
	defer rows.Close()

	for rows.Next() {
	}
	if err = rows.Err(); err != nil {
		return classify(ctx, "lock listing bookings", err)
	}
	return nil
}

func lockListing(ctx context.Context, tx *sql.Tx, id int64) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1 FOR UPDATE`
	l, err := scanListing(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, classify(ctx, "lock listing", err)
	}
	return l, nil
}
