package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayment_Settle(t *testing.T) {
	tests := []struct {
		name        string
		from        PaymentStatus
		outcome     Outcome
		wantStatus  PaymentStatus
		wantChanged bool
		wantErr     error
	}{
		{"pending success", PaymentStatusPending, OutcomeSuccess, PaymentStatusCompleted, true, nil},
		{"pending failure", PaymentStatusPending, OutcomeFailure, PaymentStatusFailed, true, nil},
		{"pending pending", PaymentStatusPending, OutcomePending, PaymentStatusPending, false, nil},
		{"completed again", PaymentStatusCompleted, OutcomeSuccess, PaymentStatusCompleted, false, nil},
		{"failed again", PaymentStatusFailed, OutcomeFailure, PaymentStatusFailed, false, nil},
		{"completed then failure", PaymentStatusCompleted, OutcomeFailure, PaymentStatusCompleted, false, ErrInvalidState},
		{"failed then success", PaymentStatusFailed, OutcomeSuccess, PaymentStatusFailed, false, ErrInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Payment{ID: 7, Status: tt.from}
			changed, err := p.Settle(tt.outcome)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantStatus, p.Status)
		})
	}
}

func TestParseOutcome(t *testing.T) {
	for in, want := range map[string]Outcome{
		"success":   OutcomeSuccess,
		"completed": OutcomeSuccess,
		"FAILURE":   OutcomeFailure,
		"failed":    OutcomeFailure,
		"pending":   OutcomePending,
	} {
		got, err := ParseOutcome(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOutcome("refunded")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPlaceholderTransactionID(t *testing.T) {
	id := NewPlaceholderTransactionID()
	assert.True(t, IsPlaceholderTransactionID(id))
	assert.NotEqual(t, id, NewPlaceholderTransactionID())
	assert.False(t, IsPlaceholderTransactionID("tx_123"))
}

func TestPayment_IsActive(t *testing.T) {
	assert.True(t, (&Payment{Status: PaymentStatusPending}).IsActive())
	assert.True(t, (&Payment{Status: PaymentStatusCompleted}).IsActive())
	assert.False(t, (&Payment{Status: PaymentStatusFailed}).IsActive())
}

func TestPaymentStatus_Outcome(t *testing.T) {
	for _, o := range []Outcome{OutcomeSuccess, OutcomeFailure, OutcomePending} {
		assert.Equal(t, o, o.Status().Outcome())
	}
}
