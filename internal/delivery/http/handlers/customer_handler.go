package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ayoqsh/loyalty-service/internal/delivery/http/dto/request"
	"github.com/ayoqsh/loyalty-service/internal/delivery/http/dto/response"
	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/ayoqsh/loyalty-service/internal/usecase"
	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	CustomerUsecase usecase.CustomerUsecase
}

func NewCustomerHandler(customerUsecase usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{CustomerUsecase: customerUsecase}
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	externalID := chi.URLParam(r, "externalID")

	customer, err := h.CustomerUsecase.GetCustomerByExternalID(r.Context(), externalID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, customerToResponse(customer))
}

func (h *CustomerHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	externalID := chi.URLParam(r, "externalID")

	var req request.ContactUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}

	customer := &domain.Customer{
		ExternalID: externalID,
		Phone:      req.Phone,
		CarName:    req.CarName,
		CarNumber:  req.CarNumber,
	}
	if err := h.CustomerUsecase.UpdateContact(r.Context(), customer); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) DeactivateCustomer(w http.ResponseWriter, r *http.Request) {
	externalID := chi.URLParam(r, "externalID")

	if err := h.CustomerUsecase.DeactivateCustomer(r.Context(), externalID); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) ListCustomerChecks(w http.ResponseWriter, r *http.Request) {
	externalID := chi.URLParam(r, "externalID")
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	checks, total, err := h.CustomerUsecase.GetCustomerChecks(r.Context(), externalID, page, limit)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	resp := response.CheckListResponse{
		Checks: make([]response.CheckResponse, len(checks)),
		Total:  total,
	}
	for i, check := range checks {
		resp.Checks[i] = response.CheckResponse{
			ID:             check.ID,
			FiscalID:       check.FiscalID,
			Amount:         check.Amount,
			IssuedAt:       check.IssuedAt,
			CashbackAmount: check.CashbackAmount,
			CreatedAt:      check.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func customerToResponse(customer *domain.Customer) response.CustomerResponse {
	return response.CustomerResponse{
		ExternalID:    customer.ExternalID,
		Phone:         customer.Phone,
		CarName:       customer.CarName,
		CarNumber:     customer.CarNumber,
		RegisteredAt:  customer.RegisteredAt,
		IsActive:      customer.IsActive,
		TotalCashback: customer.TotalCashback,
	}
}
