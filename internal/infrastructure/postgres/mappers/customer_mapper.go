package mappers

import (
	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres/models"
)

func ToDomainCustomer(model *models.CustomerModel) *domain.Customer {
	return &domain.Customer{
		ID:            model.ID,
		ExternalID:    model.ExternalID,
		Phone:         model.Phone,
		CarName:       model.CarName,
		CarNumber:     model.CarNumber,
		RegisteredAt:  model.RegisteredAt,
		IsActive:      model.IsActive,
		TotalCashback: model.TotalCashback,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMCustomer(customer *domain.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:            customer.ID,
		ExternalID:    customer.ExternalID,
		Phone:         customer.Phone,
		CarName:       customer.CarName,
		CarNumber:     customer.CarNumber,
		RegisteredAt:  customer.RegisteredAt,
		IsActive:      customer.IsActive,
		TotalCashback: customer.TotalCashback,
		CreatedAt:     customer.CreatedAt,
		UpdatedAt:     customer.UpdatedAt,
	}
}
