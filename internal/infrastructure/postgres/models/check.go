package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FiscalCheckModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	CustomerID     string `gorm:"type:uuid;not null;index:idx_check_customer_created,priority:1"`
	Customer       CustomerModel `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	// FiscalID is the global dedup key; the unique index is the single
	// serialization point for concurrent settlements of one receipt.
	FiscalID       string          `gorm:"uniqueIndex:idx_check_fiscal_id;not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IssuedAt       time.Time       `gorm:"not null"`
	CashbackAmount decimal.Decimal `gorm:"type:decimal(12,2);default:0"`
	SourceURL      string          `gorm:"size:500"`
	RawJSON        string          `gorm:"type:jsonb"`
	CreatedAt      time.Time       `gorm:"index:idx_check_customer_created,priority:2"`
	UpdatedAt      time.Time
}

func (FiscalCheckModel) TableName() string {
	return "fiscal_checks"
}

type VisitModel struct {
	ID         string           `gorm:"primaryKey;type:uuid"`
	CustomerID string           `gorm:"type:uuid;not null;index:idx_visit_customer_created,priority:1"`
	CheckID    string           `gorm:"type:uuid;not null;uniqueIndex:idx_visit_check_id"`
	Check      FiscalCheckModel `gorm:"foreignKey:CheckID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt  time.Time        `gorm:"index:idx_visit_customer_created,priority:2"`
}

func (VisitModel) TableName() string {
	return "visits"
}
