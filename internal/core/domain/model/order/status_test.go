package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Created))
		assert.Equal(t, 2, int(order.Shipped))
		assert.Equal(t, 3, int(order.Completed))
		assert.Equal(t, 4, int(order.Cancelled))
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "UNKNOWN"},
		{order.Created, "CREATED"},
		{order.Shipped, "SHIPPED"},
		{order.Completed, "COMPLETED"},
		{order.Cancelled, "CANCELLED"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}

	t.Run("out of range value", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("valid names", func(t *testing.T) {
		testCases := map[string]order.Status{
			"CREATED":   order.Created,
			"SHIPPED":   order.Shipped,
			"COMPLETED": order.Completed,
			"CANCELLED": order.Cancelled,
		}

		for name, expected := range testCases {
			status, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := order.StatusFromString("TELEPORTED")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := order.StatusFromString("")
		require.Error(t, err)
	})

	t.Run("lowercase is rejected", func(t *testing.T) {
		_, err := order.StatusFromString("created")
		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Created, order.Shipped, order.Completed, order.Cancelled} {
			assert.NoError(t, status.Validate())
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Created.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	// Full transition matrix: only the listed pairs are allowed.
	allowed := map[order.Status][]order.Status{
		order.Created: {order.Shipped, order.Completed, order.Cancelled},
		order.Shipped: {order.Completed, order.Cancelled},
	}

	all := []order.Status{order.Created, order.Shipped, order.Completed, order.Cancelled}

	for _, from := range all {
		for _, to := range all {
			expected := false
			for _, target := range allowed[from] {
				if target == to {
					expected = true
					break
				}
			}

			t.Run(from.String()+"_to_"+to.String(), func(t *testing.T) {
				assert.Equal(t, expected, from.CanTransitionTo(to))
			})
		}
	}

	t.Run("self transitions are rejected", func(t *testing.T) {
		for _, status := range all {
			assert.False(t, status.CanTransitionTo(status))
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("allowed transition", func(t *testing.T) {
		next, err := order.Created.TransitionTo(order.Shipped)
		require.NoError(t, err)
		assert.Equal(t, order.Shipped, next)
	})

	t.Run("rejected transition returns typed error", func(t *testing.T) {
		_, err := order.Completed.TransitionTo(order.Shipped)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)

		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "COMPLETED", transitionErr.From)
		assert.Equal(t, "SHIPPED", transitionErr.To)
	})

	t.Run("error message names both statuses", func(t *testing.T) {
		_, err := order.Cancelled.TransitionTo(order.Completed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CANCELLED")
		assert.Contains(t, err.Error(), "COMPLETED")
	})
}
