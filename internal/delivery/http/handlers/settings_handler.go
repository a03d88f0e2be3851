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

type SettingsHandler struct {
	SettingsUsecase usecase.SettingsUsecase
}

func NewSettingsHandler(settingsUsecase usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{SettingsUsecase: settingsUsecase}
}

func (h *SettingsHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	setting, err := h.SettingsUsecase.GetSetting(r.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrSettingNotFound) {
			writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, settingToResponse(setting))
}

func (h *SettingsHandler) SetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req request.SettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}

	setting := &domain.Setting{
		Key:         key,
		Value:       req.Value,
		Description: req.Description,
	}
	if err := h.SettingsUsecase.SetSetting(r.Context(), setting); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SettingsHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.SettingsUsecase.ListSettings(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	resp := make([]response.SettingResponse, len(settings))
	for i, setting := range settings {
		resp[i] = settingToResponse(setting)
	}
	writeJSON(w, http.StatusOK, resp)
}

func settingToResponse(setting *domain.Setting) response.SettingResponse {
	return response.SettingResponse{
		Key:         setting.Key,
		Value:       setting.Value,
		Description: setting.Description,
		UpdatedAt:   setting.UpdatedAt,
	}
}
