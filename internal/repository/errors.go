package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
)

var constraintCodes = map[pq.ErrorCode]struct{}{
	"23505": {}, // unique_violation
	"23503": {}, // foreign_key_violation
	"23514": {}, // check_violation
	"23502": {}, // not_null_violation
	"22001": {}, // string_data_right_truncation
	"22003": {}, // numeric_value_out_of_range
}

var unavailableCodes = map[pq.ErrorCode]struct{}{
	"57014": {}, // query_canceled
	"55P03": {}, // lock_not_available
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
}

// classify maps a store error onto the domain error kinds. ctx is the
// context the failed statement ran under.
func classify(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("%s: %w", op, context.Canceled)
	}

	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		if _, ok := constraintCodes[pgErr.Code]; ok {
			return fmt.Errorf("%s: %w", op, &domain.ConstraintError{
				Constraint: pgErr.Constraint,
				Detail:     pgErr.Message,
			})
		}
		if _, ok := unavailableCodes[pgErr.Code]; ok || pgErr.Code.Class() == "08" {
			return fmt.Errorf("%s: %w: %s", op, domain.ErrStoreUnavailable, pgErr.Message)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// isConstraint reports whether err is a violation of the named constraint.
func isConstraint(err error, name string) bool {
	var ce *domain.ConstraintError
	return errors.As(err, &ce) && ce.Constraint == name
}
