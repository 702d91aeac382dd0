package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ballinwear/assistant-backend/pkg/db/models"
)

// OrderDetailReport is the typed view of an order rendered for customers.
type OrderDetailReport struct {
	OrderID            string
	CustomerID         int
	CustomerName       string
	Status             string
	PaymentMethod      string
	Subtotal           decimal.Decimal
	ShippingFee        decimal.Decimal
	Total              decimal.Decimal
	OrderDate          time.Time
	CancellationReason *string
	Address            *AddressReport
	Items              []ItemReport
}

type AddressReport struct {
	Fullname     string
	AddressLine1 string
	AddressLine2 string
	AdminArea1   string
	AdminArea2   string
	PostalCode   string
	Phone        string
}

// ItemReport carries the purchase-time snapshot of a line item.
type ItemReport struct {
	ImageURL    string
	ProductName string
	Size        string
	Color       string
	Price       decimal.Decimal
	Quantity    int
	Total       decimal.Decimal
}

func newOrderDetailReport(order *models.Order) *OrderDetailReport {
	report := &OrderDetailReport{
		OrderID:            order.OrderID,
		CustomerID:         order.CustomerID,
		CustomerName:       notAvailable,
		Status:             labelOrNA(string(order.Status)),
		PaymentMethod:      labelOrNA(string(order.PaymentMethod)),
		Subtotal:           order.Subtotal,
		ShippingFee:        order.ShippingFee,
		Total:              order.Total,
		OrderDate:          order.OrderDate,
		CancellationReason: order.CancellationReason,
		Items:              make([]ItemReport, 0, len(order.Items)),
	}
	if order.Customer != nil {
		report.CustomerName = order.Customer.FullName()
	}
	if addr := order.Address; addr != nil {
		report.Address = &AddressReport{
			Fullname:     addr.Fullname,
			AddressLine1: addr.AddressLine1,
			AddressLine2: addr.AddressLine2,
			AdminArea1:   addr.AdminArea1,
			AdminArea2:   addr.AdminArea2,
			PostalCode:   addr.PostalCode,
			Phone:        addr.Phone,
		}
	}
	for _, item := range order.Items {
		line := ItemReport{
			ImageURL:    noImage,
			ProductName: notAvailable,
			Size:        item.Size,
			Color:       item.Color,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Total:       item.Total,
		}
		if item.Product != nil {
			line.ProductName = item.Product.ProductName
			if item.Product.Thumbnail != nil {
				line.ImageURL = item.Product.Thumbnail.ThumbnailURL
			}
		}
		report.Items = append(report.Items, line)
	}
	return report
}

func labelOrNA(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
