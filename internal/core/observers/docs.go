// Package observers implements the status change notifier and the built-in
// observers reacting to order status transitions.
//
// The notifier fans a status change event out to an explicit list of
// observers supplied at construction time; there is no runtime discovery or
// registration. Observers run synchronously, in registration order, before
// the triggering operation returns, so every observer sees a consistent
// post-mutation order.
//
// Failure policy: observers are isolated from each other. An error returned
// by one observer is logged by the notifier and the remaining observers
// still run.
package observers
