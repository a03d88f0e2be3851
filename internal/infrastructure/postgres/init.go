package postgres

import (
	"log"

	"github.com/ayoqsh/loyalty-service/internal/config"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.LoyaltyConfig) *gorm.DB {
	dsn := cfg.LoyaltyDB.Dsn
	// TranslateError maps the unique-violation on fiscal_id to
	// gorm.ErrDuplicatedKey, which the ledger relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.CustomerModel{}, &models.FiscalCheckModel{}, &models.VisitModel{}, &models.CashbackRuleModel{}, &models.SettingModel{})

	return db
}
