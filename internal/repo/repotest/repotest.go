// Package repotest opens throwaway sqlite databases with the full schema and
// seeds catalog and order fixtures for repository tests.
package repotest

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ballinwear/assistant-backend/pkg/db/models"
	"github.com/ballinwear/assistant-backend/pkg/enums"
)

// Open returns an isolated in-memory sqlite database with every model migrated.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}

// Broken returns a connection whose pool is already closed, so every query fails.
func Broken(t *testing.T) *gorm.DB {
	t.Helper()
	conn := Open(t)
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	_ = sqlDB.Close()
	return conn
}

// Money parses a fixed decimal literal.
func Money(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// ProductOption tweaks a product fixture before insert.
type ProductOption func(*models.Product)

func Deleted() ProductOption {
	return func(p *models.Product) { p.Status = enums.ProductStatusDeleted }
}

func WithThumbnail(url string) ProductOption {
	return func(p *models.Product) {
		p.Thumbnail = &models.Thumbnail{ThumbnailURL: url, ThumbnailPublicID: "ballin/" + uuid.NewString()}
	}
}

func WithVariant(price string, stock int, size *string, color string) ProductOption {
	return func(p *models.Product) {
		p.Variants = append(p.Variants, models.Variant{
			SKU:   fmt.Sprintf("SKU-%s", uuid.NewString()),
			Price: Money(price),
			Stock: stock,
			Size:  size,
			Color: color,
		})
	}
}

// CreateProduct inserts an Available product (plus any variants/thumbnail).
func CreateProduct(t *testing.T, db *gorm.DB, name string, opts ...ProductOption) *models.Product {
	t.Helper()
	product := &models.Product{
		ProductName: name,
		Description: name + " description",
		Category:    "Shirts",
		Status:      enums.ProductStatusAvailable,
	}
	for _, opt := range opts {
		opt(product)
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func CreateCustomer(t *testing.T, db *gorm.DB, first, last string) *models.Customer {
	t.Helper()
	customer := &models.Customer{
		Firstname: first,
		Lastname:  last,
		Email:     fmt.Sprintf("%s_%s@example.com", first, uuid.NewString()),
		Status:    enums.CustomerStatusActive,
	}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return customer
}

// OrderOption tweaks an order fixture before insert.
type OrderOption func(*models.Order)

func WithStatus(status enums.OrderStatus) OrderOption {
	return func(o *models.Order) { o.Status = status }
}

func PlacedAt(ts time.Time) OrderOption {
	return func(o *models.Order) { o.OrderDate = ts.UTC() }
}

func WithItem(productID, qty int, price string) OrderOption {
	return func(o *models.Order) {
		unit := Money(price)
		o.Items = append(o.Items, models.OrderItem{
			ProductID: productID,
			Size:      "M",
			Color:     "Black",
			Price:     unit,
			Quantity:  qty,
			Total:     unit.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
}

func WithAddress(addr models.OrderAddress) OrderOption {
	return func(o *models.Order) { o.Address = &addr }
}

func Cancelled(reason string) OrderOption {
	return func(o *models.Order) {
		o.Status = enums.OrderStatusCancelled
		o.CancellationReason = &reason
	}
}

// CreateOrder inserts a Delivered COD order for customerID.
func CreateOrder(t *testing.T, db *gorm.DB, orderID string, customerID int, opts ...OrderOption) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderID:       orderID,
		CustomerID:    customerID,
		Status:        enums.OrderStatusDelivered,
		PaymentMethod: enums.PaymentMethodCOD,
		Subtotal:      Money("0"),
		ShippingFee:   Money("0"),
		Total:         Money("0"),
		OrderDate:     time.Date(2024, 3, 15, 4, 30, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(order)
	}
	subtotal := decimal.Zero
	for _, item := range order.Items {
		subtotal = subtotal.Add(item.Total)
	}
	if order.Subtotal.IsZero() {
		order.Subtotal = subtotal
		order.Total = subtotal.Add(order.ShippingFee)
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}
