package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const reviewColumns = `id, listing_id, user_id, rating, comment, created_at`

type ReviewRepository struct {
	store
}

func NewReviewRepo(db *dbpg.DB, opts TxOptions) *ReviewRepository {
	return &ReviewRepository{store: newStore(db, opts)}
}

func scanReview(row scanner) (*domain.Review, error) {
	var rv domain.Review
	if err := row.Scan(&rv.ID, &rv.ListingID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) Create(ctx context.Context, in domain.CreateReviewInput) (*domain.Review, error) {
	query := `INSERT INTO reviews (id, listing_id, user_id, rating, comment)
			  VALUES (COALESCE(NULLIF($1::bigint, 0), nextval(pg_get_serial_sequence('reviews', 'id'))), $2, $3, $4, $5)
			  RETURNING ` + reviewColumns

	var rv *domain.Review
	err := r.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		rv, err = scanReview(tx.QueryRowContext(ctx, query, in.ID, in.ListingID, in.UserID, in.Rating, in.Comment))
		if err != nil {
			return classify(ctx, "insert review", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rv, nil
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID int64) ([]*domain.Review, error) {
	query := `SELECT ` + reviewColumns + `
			  FROM reviews
			  WHERE listing_id = $1
			  ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID)
	if err != nil {
		return nil, classify(ctx, "list reviews", err)
	}
	defer rows.Close()

	var res []*domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, rv)
	}

	return res, rows.Err()
}
