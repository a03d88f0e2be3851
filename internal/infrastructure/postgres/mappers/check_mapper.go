package mappers

import (
	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres/models"
)

func ToDomainCheck(model *models.FiscalCheckModel) *domain.FiscalCheck {
	return &domain.FiscalCheck{
		ID:             model.ID,
		CustomerID:     model.CustomerID,
		FiscalID:       model.FiscalID,
		Amount:         model.Amount,
		IssuedAt:       model.IssuedAt,
		CashbackAmount: model.CashbackAmount,
		SourceURL:      model.SourceURL,
		RawJSON:        model.RawJSON,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToGORMCheck(check *domain.FiscalCheck) *models.FiscalCheckModel {
	return &models.FiscalCheckModel{
		ID:             check.ID,
		CustomerID:     check.CustomerID,
		FiscalID:       check.FiscalID,
		Amount:         check.Amount,
		IssuedAt:       check.IssuedAt,
		CashbackAmount: check.CashbackAmount,
		SourceURL:      check.SourceURL,
		RawJSON:        check.RawJSON,
		CreatedAt:      check.CreatedAt,
		UpdatedAt:      check.UpdatedAt,
	}
}

func ToDomainVisit(model *models.VisitModel) *domain.Visit {
	return &domain.Visit{
		ID:         model.ID,
		CustomerID: model.CustomerID,
		CheckID:    model.CheckID,
		CreatedAt:  model.CreatedAt,
	}
}

func ToGORMVisit(visit *domain.Visit) *models.VisitModel {
	return &models.VisitModel{
		ID:         visit.ID,
		CustomerID: visit.CustomerID,
		CheckID:    visit.CheckID,
		CreatedAt:  visit.CreatedAt,
	}
}
