// Package queries contains read-only operations over the order store.
// Query handlers read directly from the database with raw SQL (the CQRS
// read side), bypassing the aggregate repositories used by commands.
package queries

import (
	"time"
)

// OrderQueryResponse is the persisted order representation returned by the
// read-side handlers. Status and NotificationType carry the enum names as
// stored ("CREATED", "EMAIL", ...).
type OrderQueryResponse struct {
	ID               string
	CustomerName     string
	CustomerEmail    string
	MobileNumber     string
	TotalAmount      float64
	Status           string
	NotificationType string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
