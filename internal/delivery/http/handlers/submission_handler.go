package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ayoqsh/loyalty-service/internal/delivery/http/dto/request"
	"github.com/ayoqsh/loyalty-service/internal/delivery/http/dto/response"
	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/ayoqsh/loyalty-service/internal/usecase/pipeline"
	pipelinedto "github.com/ayoqsh/loyalty-service/internal/usecase/dto/pipeline"
)

// SubmissionHandler is the entry point the bot webhook collaborator
// calls with an already-decoded QR payload.
type SubmissionHandler struct {
	Pipeline pipeline.PipelineUsecase
}

func NewSubmissionHandler(pipelineUsecase pipeline.PipelineUsecase) *SubmissionHandler {
	return &SubmissionHandler{Pipeline: pipelineUsecase}
}

func (h *SubmissionHandler) ProcessSubmission(w http.ResponseWriter, r *http.Request) {
	var req request.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.CustomerExternalID == "" || req.QRPayload == "" {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "customer_external_id and qr_payload are required"})
		return
	}

	input := &pipelinedto.SubmissionInput{
		CustomerExternalID: req.CustomerExternalID,
		QRPayload:          req.QRPayload,
	}
	if req.SubmittedAt != nil {
		input.Now = *req.SubmittedAt
	}

	output := h.Pipeline.ProcessSubmission(r.Context(), input)

	resp := response.SubmissionResponse{
		RequestID:     output.RequestID,
		Status:        string(output.Status),
		Reason:        string(output.Reason),
		FiscalID:      output.FiscalID,
		CheckID:       output.CheckID,
		CheckAmount:   output.CheckAmount,
		Cashback:      output.Cashback,
		TotalCashback: output.TotalCashback,
		Retryable:     output.Reason.Retryable(),
	}

	writeJSON(w, submissionStatusCode(output), resp)
}

func submissionStatusCode(output *pipelinedto.SubmissionOutput) int {
	if output.Settled() {
		return http.StatusOK
	}
	switch output.Reason {
	case domain.KindMalformed:
		return http.StatusBadRequest
	case domain.KindUnavailable:
		return http.StatusBadGateway
	case domain.KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		// Business-rule rejections and unparsable responses.
		return http.StatusUnprocessableEntity
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
