package order

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// mobileNumberPattern enforces the exactly-ten-digits rule for customer
// mobile numbers.
var mobileNumberPattern = regexp.MustCompile(`^\d{10}$`)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation through shipment to
// completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Customer name, email and mobile number are required
//   - Mobile number is exactly ten digits
//   - Total amount must be positive (greater than 0)
//   - Status transitions follow the order state machine
//   - updatedAt is never earlier than createdAt
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order, immutable after creation
	id kernel.UUID

	// customerName is the name of the customer who placed the order
	customerName string

	// customerEmail receives email notifications for the order
	customerEmail string

	// mobileNumber receives SMS notifications for the order
	mobileNumber string

	// totalAmount is the order total, positive, two-fraction-digit convention
	totalAmount float64

	// status represents the current state in the order lifecycle
	status Status

	// notificationType is the customer's preferred notification channel
	notificationType NotificationType

	// createdAt is set once when the order is placed
	createdAt time.Time

	// updatedAt is touched on every mutation
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order with validation. The order starts in Created
// status with both timestamps set to the current UTC time. This is the only
// way to create a brand-new valid Order, ensuring all business invariants
// are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerName: Name of the customer (required)
//   - customerEmail: Email address for notifications (required)
//   - mobileNumber: Mobile number for SMS notifications (exactly ten digits)
//   - totalAmount: Order total (must be greater than 0)
//   - notificationType: Preferred notification channel (Email or SMS)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	orderID := kernel.NewUUID()
//	o, err := NewOrder(orderID, "John Doe", "john@example.com", "9876543210", 100.00, Email)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerName string,
	customerEmail string,
	mobileNumber string,
	totalAmount float64,
	notificationType NotificationType,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerEmail(customerEmail),
		o.setMobileNumber(mobileNumber),
		o.setTotalAmount(totalAmount),
		o.setNotificationType(notificationType),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// accepts an arbitrary valid status and the original timestamps. Repositories
// use it when mapping database rows back into the domain model.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	customerEmail string,
	mobileNumber string,
	totalAmount float64,
	status Status,
	notificationType NotificationType,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerEmail(customerEmail),
		o.setMobileNumber(mobileNumber),
		o.setTotalAmount(totalAmount),
		o.setStatus(status),
		o.setNotificationType(notificationType),
	); err != nil {
		return nil, err
	}

	if updatedAt.Before(createdAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"updatedAt is invalid",
			fmt.Errorf("updatedAt %s is before createdAt %s", updatedAt, createdAt),
		)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct. Repositories call it before persisting.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the name of the customer who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the customer's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// MobileNumber returns the customer's mobile number.
func (o *Order) MobileNumber() string {
	return o.mobileNumber
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// NotificationType returns the customer's preferred notification channel.
func (o *Order) NotificationType() NotificationType {
	return o.notificationType
}

// CreatedAt returns the creation timestamp of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to the target status.
//
// The transition is validated against the order state machine before any
// mutation happens: on rejection the order is left untouched and an
// *InvalidTransitionError is returned. On success the status is updated and
// updatedAt is touched.
//
// Example:
//
//	if err := o.ChangeStatus(order.Shipped); err != nil {
//	    // illegal transition, order unchanged
//	}
func (o *Order) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerName validates and sets the customer name.
func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

// setCustomerEmail validates and sets the customer email address.
func (o *Order) setCustomerEmail(customerEmail string) error {
	if customerEmail == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}
	o.customerEmail = customerEmail
	return nil
}

// setMobileNumber validates and sets the customer mobile number.
// The number must be exactly ten digits.
func (o *Order) setMobileNumber(mobileNumber string) error {
	if mobileNumber == "" {
		return errs.NewValueIsRequiredError("mobileNumber")
	}
	if !mobileNumberPattern.MatchString(mobileNumber) {
		return errs.NewValueIsInvalidErrorWithCause(
			"mobileNumber is invalid",
			fmt.Errorf("%q is not a ten digit number", mobileNumber),
		)
	}
	o.mobileNumber = mobileNumber
	return nil
}

// setTotalAmount validates and sets the order total.
// The amount must be positive (greater than 0).
func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount is invalid",
			fmt.Errorf("%.2f is not greater than 0", totalAmount),
		)
	}
	o.totalAmount = totalAmount
	return nil
}

// setStatus validates and sets the order status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setNotificationType validates and sets the preferred notification channel.
func (o *Order) setNotificationType(notificationType NotificationType) error {
	if err := notificationType.Validate(); err != nil {
		return err
	}
	o.notificationType = notificationType
	return nil
}
