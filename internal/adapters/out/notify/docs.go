// Package notify provides outbound notification channel adapters.
//
// Each channel implements ports.NotificationChannel for a single delivery
// medium. The adapters here integrate with external gateways; delivery
// details (SMTP, SMS provider API) are encapsulated behind the channel
// interface so the core never sees transport specifics.
package notify
