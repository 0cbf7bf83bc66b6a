package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, "John Doe", "john@example.com", "9876543210", 100.00, order.Email)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "John Doe", o.CustomerName())
		assert.Equal(t, "john@example.com", o.CustomerEmail())
		assert.Equal(t, "9876543210", o.MobileNumber())
		assert.InDelta(t, 100.00, o.TotalAmount(), 0.001)
		assert.Equal(t, order.Created, o.Status())
		assert.Equal(t, order.Email, o.NotificationType())
		assert.False(t, o.CreatedAt().IsZero())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, "John Doe", "john@example.com", "9876543210", 100.00, order.Email)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with empty customer name", func(t *testing.T) {
		o, err := order.NewOrder(validID, "", "john@example.com", "9876543210", 100.00, order.Email)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customerName")
	})

	t.Run("should fail with empty customer email", func(t *testing.T) {
		o, err := order.NewOrder(validID, "John Doe", "", "9876543210", 100.00, order.Email)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerEmail")
	})

	t.Run("should fail with malformed mobile number", func(t *testing.T) {
		testCases := []string{"123", "98765432101", "98765 4321", "abcdefghij", "987-654321"}

		for _, mobileNumber := range testCases {
			o, err := order.NewOrder(validID, "John Doe", "john@example.com", mobileNumber, 100.00, order.SMS)

			require.Error(t, err, "mobile number %q should be rejected", mobileNumber)
			assert.Nil(t, o)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should fail with non-positive total amount", func(t *testing.T) {
		for _, amount := range []float64{0, -0.01, -100} {
			o, err := order.NewOrder(validID, "John Doe", "john@example.com", "9876543210", amount, order.Email)

			require.Error(t, err)
			assert.Nil(t, o)
			assert.Contains(t, err.Error(), "totalAmount")
		}
	})

	t.Run("should fail with unknown notification type", func(t *testing.T) {
		o, err := order.NewOrder(validID, "John Doe", "john@example.com", "9876543210", 100.00,
			order.UnknownNotificationType)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(validID, "", "", "123", -1, order.UnknownNotificationType)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerName")
		assert.Contains(t, err.Error(), "customerEmail")
		assert.Contains(t, err.Error(), "mobileNumber")
		assert.Contains(t, err.Error(), "totalAmount")
	})
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)

	t.Run("should restore order with persisted state", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, "John Doe", "john@example.com", "9876543210", 100.00,
			order.Shipped, order.SMS, createdAt, updatedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, order.SMS, o.NotificationType())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("should restore terminal statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Completed, order.Cancelled} {
			o, err := order.RestoreOrder(validID, "John Doe", "john@example.com", "9876543210", 100.00,
				status, order.Email, createdAt, updatedAt)

			require.NoError(t, err)
			assert.Equal(t, status, o.Status())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, "John Doe", "john@example.com", "9876543210", 100.00,
			order.Unknown, order.Email, createdAt, updatedAt)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject updatedAt before createdAt", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, "John Doe", "john@example.com", "9876543210", 100.00,
			order.Created, order.Email, createdAt, createdAt.Add(-time.Second))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "updatedAt")
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newTestOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), "John Doe", "john@example.com", "9876543210", 100.00, order.Email)
		require.NoError(t, err)
		return o
	}

	t.Run("created to shipped", func(t *testing.T) {
		o := newTestOrder(t)
		before := o.UpdatedAt()

		err := o.ChangeStatus(order.Shipped)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.False(t, o.UpdatedAt().Before(before))
	})

	t.Run("created directly to completed", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Completed))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("full lifecycle created shipped completed", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Shipped))
		require.NoError(t, o.ChangeStatus(order.Completed))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("rejected transition leaves order untouched", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled))
		updatedAt := o.UpdatedAt()

		err := o.ChangeStatus(order.Shipped)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("self transition is rejected", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Created)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("unknown target status is rejected before transition check", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Created, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "John Doe", "john@example.com", "9876543210", 100.00, order.Email)
		require.NoError(t, err)
		assert.NoError(t, o.Validate())
	})

	t.Run("zero value order is invalid", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	o1, err := order.NewOrder(id, "John Doe", "john@example.com", "9876543210", 100.00, order.Email)
	require.NoError(t, err)
	o2, err := order.RestoreOrder(id, "Jane Doe", "jane@example.com", "0123456789", 50.00,
		order.Shipped, order.SMS, o1.CreatedAt(), o1.UpdatedAt())
	require.NoError(t, err)
	o3, err := order.NewOrder(kernel.NewUUID(), "John Doe", "john@example.com", "9876543210", 100.00, order.Email)
	require.NoError(t, err)

	assert.True(t, o1.IsEqual(o2), "same ID means equal")
	assert.False(t, o1.IsEqual(o3), "different ID means not equal")
	assert.False(t, o1.IsEqual(nil))
}
