package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayoqsh/loyalty-service/internal/config"
	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher() *DefaultReceiptFetcher {
	return NewDefaultReceiptFetcher(config.FiscalAPI{Timeout: 2 * time.Second}, time.UTC)
}

func serveJSON(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetch_HappyPath(t *testing.T) {
	server := serveJSON(t, http.StatusOK,
		`{"RRN":"123456789","amount":"1500.50","datetime":"2026-03-10 14:22:05"}`)

	check, err := newTestFetcher().Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "123456789", check.FiscalID)
	assert.True(t, check.Amount.Equal(decimal.RequireFromString("1500.50")))
	assert.Equal(t, time.Date(2026, 3, 10, 14, 22, 5, 0, time.UTC), check.IssuedAt)
	assert.Equal(t, server.URL, check.SourceURL)
	assert.Contains(t, check.RawJSON, `"RRN":"123456789"`)
}

func TestFetch_FieldNameFallbacks(t *testing.T) {
	// Firmware variants disagree on field names; every documented alias
	// must resolve.
	tests := []struct {
		name string
		body string
	}{
		{"fiskal_no and total", `{"FISKAL_NO":"F-1","total":200,"date":"2026-03-10T09:00:00"}`},
		{"lowercase and sum", `{"fiskal_id":"F-1","sum":"200","created_at":"2026-03-10 09:00:00"}`},
		{"numeric id", `{"id":42,"amount":200,"datetime":"10.03.2026 09:00:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := serveJSON(t, http.StatusOK, tt.body)

			check, err := newTestFetcher().Fetch(context.Background(), server.URL)

			require.NoError(t, err)
			assert.NotEmpty(t, check.FiscalID)
			assert.True(t, check.Amount.Equal(decimal.NewFromInt(200)), "got %s", check.Amount)
			assert.False(t, check.IssuedAt.IsZero())
		})
	}
}

func TestFetch_MalformedURL(t *testing.T) {
	tests := []string{
		"",
		"not a url",
		"ftp://ofd.example/check",
		"https://",
	}

	for _, rawURL := range tests {
		_, err := newTestFetcher().Fetch(context.Background(), rawURL)
		assert.ErrorIs(t, err, domain.ErrMalformedPayload, "url: %q", rawURL)
	}
}

func TestFetch_ServerErrorIsTransient(t *testing.T) {
	server := serveJSON(t, http.StatusInternalServerError, `{"error":"boom"}`)

	_, err := newTestFetcher().Fetch(context.Background(), server.URL)

	assert.ErrorIs(t, err, domain.ErrFetchUnavailable)
	assert.Equal(t, domain.KindUnavailable, domain.KindOf(err))
}

func TestFetch_ConnectionRefusedIsTransient(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	_, err := newTestFetcher().Fetch(context.Background(), server.URL)

	assert.ErrorIs(t, err, domain.ErrFetchUnavailable)
}

func TestFetch_ClientErrorIsUnparsable(t *testing.T) {
	server := serveJSON(t, http.StatusNotFound, `{"error":"no such check"}`)

	_, err := newTestFetcher().Fetch(context.Background(), server.URL)

	assert.ErrorIs(t, err, domain.ErrUnparsableResponse)
	assert.Equal(t, domain.KindUnparsableResponse, domain.KindOf(err))
}

func TestFetch_BadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>splash page</html>`},
		{"missing fiscal id", `{"amount":100,"datetime":"2026-03-10 09:00:00"}`},
		{"missing amount", `{"RRN":"F-1","datetime":"2026-03-10 09:00:00"}`},
		{"zero amount", `{"RRN":"F-1","amount":0,"datetime":"2026-03-10 09:00:00"}`},
		{"negative amount", `{"RRN":"F-1","amount":-50,"datetime":"2026-03-10 09:00:00"}`},
		{"missing datetime", `{"RRN":"F-1","amount":100}`},
		{"unreadable datetime", `{"RRN":"F-1","amount":100,"datetime":"tenth of march"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := serveJSON(t, http.StatusOK, tt.body)

			_, err := newTestFetcher().Fetch(context.Background(), server.URL)

			assert.ErrorIs(t, err, domain.ErrUnparsableResponse)
		})
	}
}

func TestFetch_DatetimeParsedInStationLocation(t *testing.T) {
	tashkent := time.FixedZone("UTC+5", 5*3600)
	fetcher := NewDefaultReceiptFetcher(config.FiscalAPI{Timeout: 2 * time.Second}, tashkent)
	server := serveJSON(t, http.StatusOK,
		`{"RRN":"F-1","amount":100,"datetime":"2026-03-10 14:00:00"}`)

	check, err := fetcher.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	want := time.Date(2026, 3, 10, 14, 0, 0, 0, tashkent)
	assert.True(t, check.IssuedAt.Equal(want), "got %s", check.IssuedAt)
}

func TestFetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestFetcher().Fetch(ctx, server.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFetchUnavailable))
}
