package models

import (
	"strings"

	"github.com/ballinwear/assistant-backend/pkg/enums"
)

type Customer struct {
	ID        int                  `gorm:"column:id;primaryKey;autoIncrement"`
	Firstname string               `gorm:"column:firstname;type:varchar(255);not null"`
	Lastname  string               `gorm:"column:lastname;type:varchar(255);not null"`
	Email     string               `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Status    enums.CustomerStatus `gorm:"column:status;type:varchar(16);not null;default:'Active'"`
}

func (Customer) TableName() string {
	return "customers"
}

// FullName joins first and last name, skipping blanks.
func (c Customer) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(c.Firstname) + " " + strings.TrimSpace(c.Lastname))
}
