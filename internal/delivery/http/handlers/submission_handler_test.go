package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ayoqsh/loyalty-service/internal/delivery/http/dto/response"
	"github.com/ayoqsh/loyalty-service/internal/domain"
	pipelinedto "github.com/ayoqsh/loyalty-service/internal/usecase/dto/pipeline"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePipeline struct {
	output *pipelinedto.SubmissionOutput
	input  *pipelinedto.SubmissionInput
}

func (p *fakePipeline) ProcessSubmission(_ context.Context, input *pipelinedto.SubmissionInput) *pipelinedto.SubmissionOutput {
	p.input = input
	return p.output
}

func postSubmission(t *testing.T, handler *SubmissionHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/submissions", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	handler.ProcessSubmission(recorder, req)
	return recorder
}

func TestProcessSubmission_Settled(t *testing.T) {
	pipeline := &fakePipeline{output: &pipelinedto.SubmissionOutput{
		RequestID:     "req-1",
		Status:        domain.StateSettled,
		FiscalID:      "F-123",
		CheckID:       "chk-1",
		CheckAmount:   decimal.NewFromInt(1000),
		Cashback:      decimal.NewFromInt(10),
		TotalCashback: decimal.NewFromInt(25),
	}}
	handler := NewSubmissionHandler(pipeline)

	recorder := postSubmission(t, handler,
		`{"customer_external_id":"tg-42","qr_payload":"https://ofd.example/check/1"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp response.SubmissionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, "SETTLED", resp.Status)
	assert.Empty(t, resp.Reason)
	assert.True(t, resp.TotalCashback.Equal(decimal.NewFromInt(25)))
	assert.False(t, resp.Retryable)

	require.NotNil(t, pipeline.input)
	assert.Equal(t, "tg-42", pipeline.input.CustomerExternalID)
	assert.Equal(t, "https://ofd.example/check/1", pipeline.input.QRPayload)
}

func TestProcessSubmission_FailureStatusCodes(t *testing.T) {
	tests := []struct {
		reason    domain.ErrorKind
		wantCode  int
		retryable bool
	}{
		{domain.KindMalformed, http.StatusBadRequest, false},
		{domain.KindUnavailable, http.StatusBadGateway, true},
		{domain.KindStoreUnavailable, http.StatusServiceUnavailable, true},
		{domain.KindUnparsableResponse, http.StatusUnprocessableEntity, false},
		{domain.KindDuplicate, http.StatusUnprocessableEntity, false},
		{domain.KindNotToday, http.StatusUnprocessableEntity, false},
		{domain.KindDailyLimitExceeded, http.StatusUnprocessableEntity, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			handler := NewSubmissionHandler(&fakePipeline{output: &pipelinedto.SubmissionOutput{
				RequestID: "req-1",
				Status:    domain.StateFailed,
				Reason:    tt.reason,
			}})

			recorder := postSubmission(t, handler,
				`{"customer_external_id":"tg-42","qr_payload":"https://ofd.example/check/1"}`)

			assert.Equal(t, tt.wantCode, recorder.Code)

			var resp response.SubmissionResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			assert.Equal(t, string(tt.reason), resp.Reason)
			assert.Equal(t, tt.retryable, resp.Retryable)
		})
	}
}

func TestProcessSubmission_BadRequestBody(t *testing.T) {
	handler := NewSubmissionHandler(&fakePipeline{})

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"missing customer", `{"qr_payload":"https://ofd.example/check/1"}`},
		{"missing payload", `{"customer_external_id":"tg-42"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postSubmission(t, handler, tt.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}
