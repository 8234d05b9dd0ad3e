//go:build unit

package booking_test

import (
	"testing"

	"market-admin/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryTransitions(t *testing.T) {
	allowed := map[booking.DeliveryStatus][]booking.DeliveryStatus{
		booking.DeliveryProcessing: {booking.DeliveryProcessing, booking.DeliveryOngoing, booking.DeliveryCancelled},
		booking.DeliveryOngoing:    {booking.DeliveryOngoing, booking.DeliveryReturned, booking.DeliveryDelivered, booking.DeliveryCancelled},
		booking.DeliveryReturned:   {booking.DeliveryReturned},
		booking.DeliveryDelivered:  {booking.DeliveryDelivered},
		booking.DeliveryCancelled:  {booking.DeliveryCancelled},
	}

	for from, targets := range allowed {
		for _, to := range booking.DeliveryOptions {
			want := contains(targets, to)
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestPaymentTransitions(t *testing.T) {
	allowed := map[booking.PaymentStatus][]booking.PaymentStatus{
		booking.PaymentPending:   {booking.PaymentPending, booking.PaymentCompleted, booking.PaymentCancelled},
		booking.PaymentCompleted: {booking.PaymentCompleted, booking.PaymentRefunded},
		booking.PaymentCancelled: {booking.PaymentCancelled},
		booking.PaymentRefunded:  {booking.PaymentRefunded},
	}

	for from, targets := range allowed {
		for _, to := range booking.PaymentOptions {
			want := contains(targets, to)
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, booking.DeliveryDelivered.IsTerminal())
	assert.True(t, booking.DeliveryReturned.IsTerminal())
	assert.True(t, booking.DeliveryCancelled.IsTerminal())
	assert.False(t, booking.DeliveryOngoing.IsTerminal())
	assert.True(t, booking.PaymentRefunded.IsTerminal())
	assert.False(t, booking.PaymentCompleted.IsTerminal())
	assert.False(t, booking.DeliveryStatus("shipped").IsTerminal())
}

func TestNextIsACopy(t *testing.T) {
	next := booking.DeliveryProcessing.Next()
	next[0] = booking.DeliveryDelivered

	if diff := cmp.Diff([]booking.DeliveryStatus{booking.DeliveryOngoing, booking.DeliveryCancelled}, booking.DeliveryProcessing.Next()); diff != "" {
		t.Errorf("Next() mutated (-want +got):\n%s", diff)
	}
}

func TestReconstruct(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		b, err := booking.Reconstruct(7, "ongoing", "completed")
		require.NoError(t, err)
		assert.Equal(t, int64(7), b.ID())
		assert.Equal(t, booking.DeliveryOngoing, b.DeliveryStatus())
		assert.Equal(t, booking.PaymentCompleted, b.PaymentStatus())
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := booking.Reconstruct(7, "shipped", "pending")
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

func TestCanCancel(t *testing.T) {
	tests := []struct {
		delivery string
		payment  string
		want     bool
	}{
		{"processing", "pending", true},
		{"processing", "completed", false},
		{"ongoing", "pending", false},
		{"cancelled", "cancelled", false},
	}
	for _, tt := range tests {
		b, err := booking.Reconstruct(1, tt.delivery, tt.payment)
		require.NoError(t, err)
		assert.Equal(t, tt.want, b.CanCancel(), "%s/%s", tt.delivery, tt.payment)
	}
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name  string
		axis  booking.Axis
		value string
		errIs error
	}{
		{name: "delivery forward", axis: booking.AxisDelivery, value: "ongoing"},
		{name: "delivery re-select", axis: booking.AxisDelivery, value: "processing"},
		{name: "delivery skip ahead", axis: booking.AxisDelivery, value: "delivered", errIs: booking.ErrInvalidTransition},
		{name: "delivery unknown", axis: booking.AxisDelivery, value: "lost", errIs: booking.ErrInvalidStatus},
		{name: "payment forward", axis: booking.AxisPayment, value: "completed"},
		{name: "payment refund before completion", axis: booking.AxisPayment, value: "refunded", errIs: booking.ErrInvalidTransition},
		{name: "unknown axis", axis: booking.Axis("priority"), value: "high", errIs: booking.ErrInvalidAxis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := booking.Reconstruct(1, "processing", "pending")
			require.NoError(t, err)

			err = b.ValidateTransition(tt.axis, tt.value)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAxesAreIndependent(t *testing.T) {
	b, err := booking.Reconstruct(1, "processing", "pending")
	require.NoError(t, err)

	b.Apply(booking.AxisPayment, "completed")

	assert.Equal(t, "processing", b.StatusOf(booking.AxisDelivery))
	assert.Equal(t, "completed", b.StatusOf(booking.AxisPayment))
	assert.NoError(t, b.ValidateTransition(booking.AxisDelivery, "ongoing"))
	assert.False(t, b.CanCancel())
}

func TestParseAxis(t *testing.T) {
	axis, err := booking.ParseAxis("payment_status")
	require.NoError(t, err)
	assert.Equal(t, booking.AxisPayment, axis)

	_, err = booking.ParseAxis("payment")
	assert.ErrorIs(t, err, booking.ErrInvalidAxis)
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
