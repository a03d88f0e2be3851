package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ayoqsh/loyalty-service/internal/config"
	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Layouts tried when the remote datetime field is a bare string. The
// fiscal authority is not consistent across firmware versions.
var defaultTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02.01.2006 15:04:05",
}

type DefaultReceiptFetcher struct {
	client      *http.Client
	fieldMap    config.FieldMap
	timeLayouts []string
	location    *time.Location
}

func NewDefaultReceiptFetcher(cfg config.FiscalAPI, location *time.Location) *DefaultReceiptFetcher {
	layouts := cfg.TimeLayouts
	if len(layouts) == 0 {
		layouts = defaultTimeLayouts
	}
	fieldMap := cfg.FieldMap
	if len(fieldMap.FiscalID) == 0 {
		fieldMap.FiscalID = []string{"RRN", "FISKAL_NO", "fiskal_id", "id"}
	}
	if len(fieldMap.Amount) == 0 {
		fieldMap.Amount = []string{"amount", "total", "sum"}
	}
	if len(fieldMap.IssuedAt) == 0 {
		fieldMap.IssuedAt = []string{"datetime", "date", "created_at"}
	}
	return &DefaultReceiptFetcher{
		client:      &http.Client{Timeout: cfg.Timeout},
		fieldMap:    fieldMap,
		timeLayouts: layouts,
		location:    location,
	}
}

func (f *DefaultReceiptFetcher) Fetch(ctx context.Context, rawURL string) (*domain.CanonicalCheck, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrMalformedPayload, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	response, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchUnavailable, err)
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchUnavailable, err)
	}

	if response.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrFetchUnavailable, response.StatusCode)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUnparsableResponse, response.StatusCode)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(responseBodyBytes, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnparsableResponse, err)
	}

	fiscalID, ok := f.pickString(payload, f.fieldMap.FiscalID)
	if !ok {
		return nil, fmt.Errorf("%w: missing fiscal id", domain.ErrUnparsableResponse)
	}

	amount, ok := f.pickAmount(payload, f.fieldMap.Amount)
	if !ok || !amount.IsPositive() {
		return nil, fmt.Errorf("%w: missing or non-positive amount", domain.ErrUnparsableResponse)
	}

	issuedAt, ok := f.pickTime(payload, f.fieldMap.IssuedAt)
	if !ok {
		return nil, fmt.Errorf("%w: missing or unreadable datetime", domain.ErrUnparsableResponse)
	}

	return &domain.CanonicalCheck{
		FiscalID:  fiscalID,
		Amount:    amount,
		IssuedAt:  issuedAt,
		SourceURL: parsed.String(),
		RawJSON:   string(responseBodyBytes),
	}, nil
}

func (f *DefaultReceiptFetcher) pickString(payload map[string]interface{}, fields []string) (string, bool) {
	for _, field := range fields {
		value, exists := payload[field]
		if !exists || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if v != "" {
				return v, true
			}
		case float64:
			return decimal.NewFromFloat(v).String(), true
		}
	}
	return "", false
}

func (f *DefaultReceiptFetcher) pickAmount(payload map[string]interface{}, fields []string) (decimal.Decimal, bool) {
	for _, field := range fields {
		value, exists := payload[field]
		if !exists || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			amount, err := decimal.NewFromString(v)
			if err == nil {
				return amount, true
			}
		case float64:
			return decimal.NewFromFloat(v), true
		}
	}
	return decimal.Zero, false
}

func (f *DefaultReceiptFetcher) pickTime(payload map[string]interface{}, fields []string) (time.Time, bool) {
	for _, field := range fields {
		value, exists := payload[field]
		if !exists {
			continue
		}
		raw, isString := value.(string)
		if !isString {
			continue
		}
		for _, layout := range f.timeLayouts {
			parsed, err := time.ParseInLocation(layout, raw, f.location)
			if err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
