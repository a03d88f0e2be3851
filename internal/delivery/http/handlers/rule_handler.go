package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ayoqsh/loyalty-service/internal/delivery/http/dto/request"
	"github.com/ayoqsh/loyalty-service/internal/delivery/http/dto/response"
	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/ayoqsh/loyalty-service/internal/usecase"
	"github.com/go-chi/chi/v5"
)

type RuleHandler struct {
	RuleUsecase usecase.RuleUsecase
}

func NewRuleHandler(ruleUsecase usecase.RuleUsecase) *RuleHandler {
	return &RuleHandler{RuleUsecase: ruleUsecase}
}

func (h *RuleHandler) CreateRule(w http.ResponseWriter, r *http.Request) {
	var req request.RuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}

	rule, err := h.RuleUsecase.CreateRule(r.Context(), ruleFromRequest(&req, ""))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, ruleToResponse(rule))
}

func (h *RuleHandler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	ruleID := chi.URLParam(r, "ruleID")

	var req request.RuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.RuleUsecase.UpdateRule(r.Context(), ruleFromRequest(&req, ruleID)); err != nil {
		if errors.Is(err, domain.ErrRuleNotFound) {
			writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RuleHandler) DeactivateRule(w http.ResponseWriter, r *http.Request) {
	ruleID := chi.URLParam(r, "ruleID")

	if err := h.RuleUsecase.DeactivateRule(r.Context(), ruleID); err != nil {
		if errors.Is(err, domain.ErrRuleNotFound) {
			writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RuleHandler) GetRule(w http.ResponseWriter, r *http.Request) {
	ruleID := chi.URLParam(r, "ruleID")

	rule, err := h.RuleUsecase.GetRuleByID(r.Context(), ruleID)
	if err != nil {
		if errors.Is(err, domain.ErrRuleNotFound) {
			writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ruleToResponse(rule))
}

func (h *RuleHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.RuleUsecase.ListRules(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	resp := make([]response.RuleResponse, len(rules))
	for i, rule := range rules {
		resp[i] = ruleToResponse(rule)
	}
	writeJSON(w, http.StatusOK, resp)
}

func ruleFromRequest(req *request.RuleRequest, ruleID string) *domain.CashbackRule {
	return &domain.CashbackRule{
		ID:         ruleID,
		Kind:       domain.RuleKind(req.Kind),
		Name:       req.Name,
		Threshold:  req.Threshold,
		CashAmount: req.CashAmount,
		Percentage: req.Percentage,
		Priority:   req.Priority,
		IsActive:   req.IsActive,
	}
}

func ruleToResponse(rule *domain.CashbackRule) response.RuleResponse {
	return response.RuleResponse{
		ID:         rule.ID,
		Kind:       string(rule.Kind),
		Name:       rule.Name,
		Threshold:  rule.Threshold,
		CashAmount: rule.CashAmount,
		Percentage: rule.Percentage,
		Priority:   rule.Priority,
		IsActive:   rule.IsActive,
		CreatedAt:  rule.CreatedAt,
		UpdatedAt:  rule.UpdatedAt,
	}
}
