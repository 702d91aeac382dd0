package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base provides a shared foundation for the read repositories.
type Base struct {
	db *gorm.DB
}

// NewBase constructs a Base repository backed by the provided GORM connection.
func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// Session pins a single pooled connection for the duration of fn and hands it
// back to the pool when fn returns, whether it succeeded or not.
func (b Base) Session(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return b.DB(ctx).Connection(fn)
}
