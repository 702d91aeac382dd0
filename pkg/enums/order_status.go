package enums

import "fmt"

// OrderStatus tracks an order from placement to receipt.
// Pending -> Confirmed -> Shipped -> Delivered -> Received, or one of the
// terminal Cancelled/Rejected/Failed states.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusReceived  OrderStatus = "Received"
	OrderStatusCancelled OrderStatus = "Cancelled"
	OrderStatusRejected  OrderStatus = "Rejected"
	OrderStatusFailed    OrderStatus = "Failed"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusReceived,
	OrderStatusCancelled,
	OrderStatusRejected,
	OrderStatusFailed,
}

// CompletedOrderStatuses are the states that count as a finished sale.
var CompletedOrderStatuses = []OrderStatus{
	OrderStatusDelivered,
	OrderStatusReceived,
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsCompleted reports whether the order counts toward sales figures.
func (s OrderStatus) IsCompleted() bool {
	for _, candidate := range CompletedOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the order can no longer progress.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusReceived, OrderStatusCancelled, OrderStatusRejected, OrderStatusFailed:
		return true
	}
	return false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
