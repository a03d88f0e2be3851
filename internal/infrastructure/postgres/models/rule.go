package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CashbackRuleModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	Kind       string `gorm:"not null"`
	Name       string `gorm:"size:100"`
	Threshold  decimal.Decimal `gorm:"type:decimal(12,2);default:0"`
	CashAmount decimal.Decimal `gorm:"type:decimal(12,2);default:0"`
	Percentage decimal.Decimal `gorm:"type:decimal(5,2);default:0"`
	Priority   int32           `gorm:"index:idx_rule_priority"`
	IsActive   bool            `gorm:"default:true;index:idx_rule_active"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (CashbackRuleModel) TableName() string {
	return "cashback_rules"
}

type SettingModel struct {
	Key         string `gorm:"primaryKey;size:100"`
	Value       string `gorm:"type:text;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SettingModel) TableName() string {
	return "settings"
}
