package notifications

import (
	"errors"
	"fmt"
)

// Sentinel errors for the notification pipeline. Typed errors below unwrap
// to these so callers can classify failures with errors.Is.
var (
	ErrUnknownChannel  = errors.New("unknown notification channel")
	ErrDeliveryFailed  = errors.New("notification delivery failed")
	ErrDispatcherState = errors.New("dispatcher is in the wrong state")
)

// UnknownChannelError indicates that no channel implementation was registered
// for the requested notification type. It points at a wiring mistake, not a
// transient delivery problem, so it is never retried.
type UnknownChannelError struct {
	ChannelType string
}

// NewUnknownChannelError creates an UnknownChannelError for the given
// channel type name.
func NewUnknownChannelError(channelType string) *UnknownChannelError {
	return &UnknownChannelError{ChannelType: channelType}
}

func (e *UnknownChannelError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownChannel, e.ChannelType)
}

func (e *UnknownChannelError) Unwrap() error {
	return ErrUnknownChannel
}

// DeliveryFailedError indicates that a notification could not be delivered
// after the retry budget was exhausted. Attempts carries the exact number of
// delivery attempts made; Cause holds the error of the final attempt.
type DeliveryFailedError struct {
	ChannelType string
	Attempts    int
	Cause       error
}

// NewDeliveryFailedError creates a DeliveryFailedError for the given channel
// type after the given number of attempts.
func NewDeliveryFailedError(channelType string, attempts int, cause error) *DeliveryFailedError {
	return &DeliveryFailedError{ChannelType: channelType, Attempts: attempts, Cause: cause}
}

func (e *DeliveryFailedError) Error() string {
	return fmt.Sprintf("%s: channel %s after %d attempts (cause: %s)",
		ErrDeliveryFailed, e.ChannelType, e.Attempts, e.Cause)
}

func (e *DeliveryFailedError) Unwrap() error {
	return ErrDeliveryFailed
}
