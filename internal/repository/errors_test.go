package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unique", &pq.Error{Code: "23505", Constraint: "users_email_key"}, domain.ErrConstraintViolation},
		{"foreign key", &pq.Error{Code: "23503"}, domain.ErrConstraintViolation},
		{"check", &pq.Error{Code: "23514"}, domain.ErrConstraintViolation},
		{"too long", &pq.Error{Code: "22001"}, domain.ErrConstraintViolation},
		{"lock timeout", &pq.Error{Code: "55P03"}, domain.ErrStoreUnavailable},
		{"deadlock", &pq.Error{Code: "40P01"}, domain.ErrStoreUnavailable},
		{"connection", &pq.Error{Code: "08006"}, domain.ErrStoreUnavailable},
		{"deadline", context.DeadlineExceeded, domain.ErrStoreUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(context.Background(), "op", tt.err)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClassify_KeepsConstraintName(t *testing.T) {
	err := classify(context.Background(), "insert", &pq.Error{Code: "23505", Constraint: "users_email_key"})
	assert.True(t, isConstraint(err, "users_email_key"))
	assert.False(t, isConstraint(err, "payments_transaction_id_key"))
}

func TestClassify_CallerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := classify(ctx, "op", &pq.Error{Code: "57014"})
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestClassify_Other(t *testing.T) {
	assert.NoError(t, classify(context.Background(), "op", nil))

	boom := errors.New("boom")
	err := classify(context.Background(), "op", boom)
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrConstraintViolation)
}
