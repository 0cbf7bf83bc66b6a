// Package notifications implements the customer notification pipeline for
// order status changes.
//
// The pipeline is built from small composable parts:
//   - ComposeMessage: a pure function mapping (order, status, channel type) to text
//   - ChannelRegistry: resolves a notification type to a registered channel and
//     wraps it with the cross-cutting decorators on every resolution
//   - logging and retry decorators: observability and bounded redelivery around
//     any NotificationChannel without changing its interface
//   - Dispatcher: a bounded worker pool delivering notifications asynchronously
//     so slow or retrying channel I/O never blocks order mutations
//
// Decorators and the registry hold no mutable shared state, so concurrent
// dispatches for different orders are fully independent. Retries for a single
// dispatch execute strictly in sequence.
package notifications
