package commands

import (
	"errors"
	"regexp"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrCustomerEmailIsRequired = errors.New("customer email is required")
	ErrMobileNumberIsInvalid   = errors.New("mobile number must be exactly 10 digits")
	ErrTotalAmountIsInvalid    = errors.New("total amount must be greater than 0")
)

var mobileNumberPattern = regexp.MustCompile(`^\d{10}$`)

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the customer details, the order total and the preferred
// notification channel.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("John Doe", "john@example.com", "9876543210", 100.00, order.Email)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, dispatcher, logger)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created", created.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName     string
	customerEmail    string
	mobileNumber     string
	totalAmount      float64
	notificationType order.NotificationType

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that name and email are present, the mobile number is exactly
// ten digits, the amount is positive and the notification type is known.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	customerName string,
	customerEmail string,
	mobileNumber string,
	totalAmount float64,
	notificationType order.NotificationType,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerName(customerName),
		orderCommand.setCustomerEmail(customerEmail),
		orderCommand.setMobileNumber(mobileNumber),
		orderCommand.setTotalAmount(totalAmount),
		orderCommand.setNotificationType(notificationType),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the customer's email address.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// MobileNumber returns the customer's mobile number.
func (c CreateOrderCommand) MobileNumber() string {
	return c.mobileNumber
}

// TotalAmount returns the order total.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// NotificationType returns the customer's preferred notification channel.
func (c CreateOrderCommand) NotificationType() order.NotificationType {
	return c.notificationType
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setCustomerEmail(customerEmail string) error {
	if customerEmail == "" {
		return ErrCustomerEmailIsRequired
	}

	c.customerEmail = customerEmail
	return nil
}

func (c *CreateOrderCommand) setMobileNumber(mobileNumber string) error {
	if !mobileNumberPattern.MatchString(mobileNumber) {
		return ErrMobileNumberIsInvalid
	}

	c.mobileNumber = mobileNumber
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount float64) error {
	if totalAmount <= 0 {
		return ErrTotalAmountIsInvalid
	}

	c.totalAmount = totalAmount
	return nil
}

func (c *CreateOrderCommand) setNotificationType(notificationType order.NotificationType) error {
	if err := notificationType.Validate(); err != nil {
		return err
	}

	c.notificationType = notificationType
	return nil
}
