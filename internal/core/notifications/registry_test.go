package notifications_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelRegistry_Resolve(t *testing.T) {
	logger := slog.Default()

	t.Run("resolves registered channel", func(t *testing.T) {
		email := &flakyChannel{channelType: order.Email}
		sms := &flakyChannel{channelType: order.SMS}
		registry := notifications.NewChannelRegistry(logger, 3, email, sms)

		channel, err := registry.Resolve(order.Email)
		require.NoError(t, err)
		assert.Equal(t, order.Email, channel.Type())

		channel, err = registry.Resolve(order.SMS)
		require.NoError(t, err)
		assert.Equal(t, order.SMS, channel.Type())
	})

	t.Run("unknown type returns typed error", func(t *testing.T) {
		registry := notifications.NewChannelRegistry(logger, 3, &flakyChannel{channelType: order.Email})

		channel, err := registry.Resolve(order.SMS)

		assert.Nil(t, channel)
		require.Error(t, err)
		assert.ErrorIs(t, err, notifications.ErrUnknownChannel)

		var unknownErr *notifications.UnknownChannelError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "SMS", unknownErr.ChannelType)
	})

	t.Run("resolved channel carries the decorator pipeline", func(t *testing.T) {
		var buf bytes.Buffer
		captured := slog.New(slog.NewTextHandler(&buf, nil))

		// Two failures then success: the retry decorator must drive three
		// attempts and the logging decorator must record each of them.
		inner := &flakyChannel{failuresLeft: 2, err: errors.New("flaky gateway"), channelType: order.Email}
		registry := notifications.NewChannelRegistry(captured, 3, inner)

		channel, err := registry.Resolve(order.Email)
		require.NoError(t, err)

		err = channel.Send(context.Background(), newTestOrder(t), "message")
		require.NoError(t, err)
		assert.Equal(t, 3, inner.callCount())
		assert.Contains(t, buf.String(), "Notification send failed")
		assert.Contains(t, buf.String(), "Notification sent")
		assert.Contains(t, buf.String(), "retrying")
	})

	t.Run("each resolution returns a fresh decorated instance", func(t *testing.T) {
		inner := &flakyChannel{channelType: order.Email}
		registry := notifications.NewChannelRegistry(logger, 3, inner)

		first, err := registry.Resolve(order.Email)
		require.NoError(t, err)
		second, err := registry.Resolve(order.Email)
		require.NoError(t, err)

		assert.NotSame(t, first, second)
	})

	t.Run("later registration replaces earlier one for the same type", func(t *testing.T) {
		first := &flakyChannel{channelType: order.Email}
		second := &flakyChannel{channelType: order.Email}
		registry := notifications.NewChannelRegistry(logger, 3, first, second)

		channel, err := registry.Resolve(order.Email)
		require.NoError(t, err)
		require.NoError(t, channel.Send(context.Background(), newTestOrder(t), "message"))

		assert.Equal(t, 0, first.callCount())
		assert.Equal(t, 1, second.callCount())
	})
}
