package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPickupIsRequired   = errors.New("pickup location is required")
	ErrDeliveryIsRequired = errors.New("delivery location is required")
	ErrItemTypeIsRequired = errors.New("item type is required")
	ErrQuantityIsInvalid  = errors.New("quantity must be greater than 0")
)

// CreateOrderCommand represents a request to register a new delivery order.
// Encapsulates the client, route and cargo details needed to start the
// order lifecycle in pending status.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, clientID, "Warehouse 4", "12 Elm Street", "electronics", 3, true)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting driver assignment", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	clientID kernel.UUID
	pickup   string
	delivery string
	itemType string
	quantity float64
	vip      bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that both identifiers are valid, locations and item type are not
// empty, and quantity is positive. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	pickup, delivery, itemType string,
	quantity float64,
	vip bool,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		vip:   vip,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setPickup(pickup),
		orderCommand.setDelivery(delivery),
		orderCommand.setItemType(itemType),
		orderCommand.setQuantity(quantity),
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

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identifier of the client submitting the order.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Pickup returns the pickup location.
func (c CreateOrderCommand) Pickup() string {
	return c.pickup
}

// Delivery returns the delivery destination.
func (c CreateOrderCommand) Delivery() string {
	return c.delivery
}

// ItemType returns the cargo item description.
func (c CreateOrderCommand) ItemType() string {
	return c.itemType
}

// Quantity returns the shipped quantity in units.
func (c CreateOrderCommand) Quantity() float64 {
	return c.quantity
}

// IsVip reports whether the VIP surcharge applies at billing time.
func (c CreateOrderCommand) IsVip() bool {
	return c.vip
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setPickup(pickup string) error {
	if strings.TrimSpace(pickup) == "" {
		return ErrPickupIsRequired
	}

	c.pickup = pickup
	return nil
}

func (c *CreateOrderCommand) setDelivery(delivery string) error {
	if strings.TrimSpace(delivery) == "" {
		return ErrDeliveryIsRequired
	}

	c.delivery = delivery
	return nil
}

func (c *CreateOrderCommand) setItemType(itemType string) error {
	if strings.TrimSpace(itemType) == "" {
		return ErrItemTypeIsRequired
	}

	c.itemType = itemType
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
