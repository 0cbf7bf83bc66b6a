package notifications

import (
	"ordering/internal/core/domain/model/order"
)

// statusSentences maps each order status to its canonical notification
// sentence. The texts are part of the external contract with customers and
// must not drift between channels.
func statusSentences() map[order.Status]string {
	return map[order.Status]string{
		order.Created:   "Your order has been created.",
		order.Shipped:   "Your order has been shipped.",
		order.Completed: "Your order has been delivered.",
		order.Cancelled: "Your order has been cancelled.",
	}
}

// channelLabels maps a notification type to the label prefixed to every
// message sent through that channel.
func channelLabels() map[order.NotificationType]string {
	return map[order.NotificationType]string{
		order.Email: "Email notification: ",
		order.SMS:   "SMS notification: ",
	}
}

// ComposeMessage builds the human-readable notification text for an order
// status change: a channel-specific label, the canonical sentence for the
// status, and the order identity.
//
// ComposeMessage is pure and deterministic: identical inputs always produce
// identical output, which the notification tests rely on. Unmapped statuses
// fall back to a generic update sentence, unmapped channel types to the SMS
// label.
func ComposeMessage(aggregate *order.Order, status order.Status, channelType order.NotificationType) string {
	base, ok := statusSentences()[status]
	if !ok {
		base = "Your order has been updated."
	}

	label, ok := channelLabels()[channelType]
	if !ok {
		label = "SMS notification: "
	}

	return label + base + " Order ID: " + aggregate.ID().String()
}
