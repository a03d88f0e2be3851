package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	ExternalID    string `gorm:"uniqueIndex:idx_customer_external_id;not null"`
	Phone         string
	CarName       string
	CarNumber     string
	RegisteredAt  time.Time
	IsActive      bool            `gorm:"default:true"`
	TotalCashback decimal.Decimal `gorm:"type:decimal(12,2);default:0"`
	CreatedAt     time.Time       `gorm:"index:idx_customer_created_at"`
	UpdatedAt     time.Time
}

func (CustomerModel) TableName() string {
	return "customers"
}
