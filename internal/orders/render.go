package orders

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ballinwear/assistant-backend/pkg/localtime"
)

const (
	notAvailable    = "N/A"
	noImage         = "No image available"
	noAddress       = "No shipping address found.\n"
	noItems         = "No items found for this order."
	noCancellation  = "No cancellation reason."
	shippingFeeText = "Free"
)

// NotFoundMessage is what the assistant relays when an order id has no match.
func NotFoundMessage(orderID string) string {
	return fmt.Sprintf("No order found with ID: %s", orderID)
}

// FailureMessage is returned in place of a report when the store fails.
const FailureMessage = "Failed to fetch order details."

// RenderOrderDetail renders the summary, address, items and cancellation
// reason sections, in that order.
func RenderOrderDetail(report *OrderDetailReport) string {
	var b strings.Builder
	b.WriteString("Order summary:")
	b.WriteString(renderSummary(report))
	b.WriteString("\n")
	b.WriteString(renderAddress(report.Address))
	b.WriteString("\nOrder items:\n")
	b.WriteString(renderItems(report.Items))
	b.WriteString("\nCancellation Reason: ")
	if report.CancellationReason != nil && *report.CancellationReason != "" {
		b.WriteString(*report.CancellationReason)
	} else {
		b.WriteString(noCancellation)
	}
	b.WriteString("\n")
	return b.String()
}

// Stored shipping fees are never shown; shipping always reads Free.
func renderSummary(r *OrderDetailReport) string {
	return fmt.Sprintf(`
Order ID: %s
Customer ID: %d
Customer Name: %s
Status: %s
Payment Method: %s
Subtotal: %s
Shipping Fee: %s
Total: %s
Order Date: %s
`,
		r.OrderID,
		r.CustomerID,
		r.CustomerName,
		r.Status,
		r.PaymentMethod,
		peso(r.Subtotal),
		shippingFeeText,
		peso(r.Total),
		localtime.Format(r.OrderDate),
	)
}

func renderAddress(addr *AddressReport) string {
	if addr == nil {
		return noAddress
	}
	return fmt.Sprintf(`
Shipping Address:
  Name: %s
  %s
  %s
  %s, %s
  %s
  Phone: %s
`,
		addr.Fullname,
		addr.AddressLine1,
		addr.AddressLine2,
		addr.AdminArea2, addr.AdminArea1,
		addr.PostalCode,
		addr.Phone,
	)
}

func renderItems(items []ItemReport) string {
	if len(items) == 0 {
		return noItems
	}
	blocks := make([]string, 0, len(items))
	for i, item := range items {
		blocks = append(blocks, fmt.Sprintf(`
Item %d:
- Image: %s
- Product Name: %s
- Size: %s
- Color: %s
- Price: %s
- Quantity: %d
- Total: %s
`,
			i+1,
			item.ImageURL,
			item.ProductName,
			item.Size,
			item.Color,
			peso(item.Price),
			item.Quantity,
			peso(item.Total),
		))
	}
	return strings.Join(blocks, "\n")
}

func peso(amount decimal.Decimal) string {
	return "₱" + amount.StringFixed(2)
}
