package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationType_String(t *testing.T) {
	assert.Equal(t, "EMAIL", order.Email.String())
	assert.Equal(t, "SMS", order.SMS.String())
	assert.Equal(t, "UNKNOWN", order.UnknownNotificationType.String())
	assert.Equal(t, "UNKNOWN", order.NotificationType(99).String())
}

func TestNotificationTypeFromString(t *testing.T) {
	t.Run("valid names", func(t *testing.T) {
		notificationType, err := order.NotificationTypeFromString("EMAIL")
		require.NoError(t, err)
		assert.Equal(t, order.Email, notificationType)

		notificationType, err = order.NotificationTypeFromString("SMS")
		require.NoError(t, err)
		assert.Equal(t, order.SMS, notificationType)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := order.NotificationTypeFromString("PIGEON")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("lowercase is rejected", func(t *testing.T) {
		_, err := order.NotificationTypeFromString("email")
		require.Error(t, err)
	})
}

func TestNotificationType_Validate(t *testing.T) {
	assert.NoError(t, order.Email.Validate())
	assert.NoError(t, order.SMS.Validate())
	assert.Error(t, order.UnknownNotificationType.Validate())
	assert.Error(t, order.NotificationType(42).Validate())
}
