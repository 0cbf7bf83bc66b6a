package notifications

import (
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// ChannelRegistry resolves a notification type to its registered channel
// implementation and applies the cross-cutting decorator pipeline on every
// resolution.
//
// Registration happens once at construction from an explicit channel list
// and the registry is immutable afterwards. Resolve returns a freshly
// decorated instance each time: the base channel wrapped first by the
// logging decorator, then by the retry decorator (retry outermost), so
// decorators never share per-call state between dispatches.
type ChannelRegistry struct {
	channels    map[order.NotificationType]ports.NotificationChannel
	maxAttempts int
	logger      *slog.Logger
}

// NewChannelRegistry creates a registry over the given base channels.
// Later channels with the same type replace earlier ones. maxAttempts is the
// retry budget applied to every resolved channel; a non-positive value falls
// back to DefaultMaxAttempts.
func NewChannelRegistry(logger *slog.Logger, maxAttempts int, channels ...ports.NotificationChannel) *ChannelRegistry {
	registered := make(map[order.NotificationType]ports.NotificationChannel, len(channels))
	for _, channel := range channels {
		registered[channel.Type()] = channel
	}

	return &ChannelRegistry{
		channels:    registered,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Resolve returns the decorated channel for the given notification type.
//
// Returns:
//   - a newly decorated channel (logging inside, retry outside) on success
//   - *UnknownChannelError if no channel was registered for the type
func (r *ChannelRegistry) Resolve(channelType order.NotificationType) (ports.NotificationChannel, error) {
	base, ok := r.channels[channelType]
	if !ok {
		return nil, NewUnknownChannelError(channelType.String())
	}

	decorated := NewLoggingChannel(base, r.logger)
	decorated = NewRetryChannel(decorated, r.maxAttempts, r.logger)
	return decorated, nil
}
