package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// NotificationType identifies a customer notification channel. It is used
// both as the routing key into the channel registry and as the customer's
// preferred channel stored on the order.
type NotificationType int

const (
	// UnknownNotificationType represents an invalid or undefined channel.
	// This value (0) helps catch uninitialized NotificationType values.
	UnknownNotificationType NotificationType = iota

	// Email delivers notifications to the customer's email address.
	Email

	// SMS delivers notifications to the customer's mobile number.
	SMS
)

// getNotificationTypeStrings returns a map of NotificationType values to
// their string representations. All values are included for conversion.
func getNotificationTypeStrings() map[NotificationType]string {
	return map[NotificationType]string{
		UnknownNotificationType: "UNKNOWN",
		Email:                   "EMAIL",
		SMS:                     "SMS",
	}
}

// getValidNotificationTypeStrings returns a map of only valid
// NotificationType values to support validation and parsing.
func getValidNotificationTypeStrings() map[NotificationType]string {
	//nolint:exhaustive // UnknownNotificationType is intentionally excluded
	return map[NotificationType]string{
		Email: "EMAIL",
		SMS:   "SMS",
	}
}

// NotificationTypeFromString parses a notification type from its persisted
// or transport name ("EMAIL", "SMS").
func NotificationTypeFromString(name string) (NotificationType, error) {
	for notificationType, str := range getValidNotificationTypeStrings() {
		if str == name {
			return notificationType, nil
		}
	}
	return UnknownNotificationType, errs.NewValueIsInvalidErrorWithCause(
		"notification type is invalid",
		fmt.Errorf("%q is not a valid notification type", name),
	)
}

// Validate checks if the NotificationType value is valid.
// Valid types are Email and SMS.
func (t NotificationType) Validate() error {
	if _, ok := getValidNotificationTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"notification type is invalid",
			fmt.Errorf("%d is not a valid notification type", t),
		)
	}
	return nil
}

// String returns the canonical name of the notification type.
// It implements the fmt.Stringer interface and is safe to call on any value.
func (t NotificationType) String() string {
	if str, ok := getNotificationTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
