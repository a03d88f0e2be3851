package notifier

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayoqsh/loyalty-service/internal/domain"
	"go.uber.org/zap"
)

// HTTPBotNotifier posts submission outcomes back to the bot service.
// Fire-and-forget: notification failures never affect settlement.
type HTTPBotNotifier struct {
	callbackURL string
	client      *http.Client
	logger      *zap.Logger
}

func NewHTTPBotNotifier(callbackURL string, logger *zap.Logger) *HTTPBotNotifier {
	return &HTTPBotNotifier{
		callbackURL: callbackURL,
		client:      &http.Client{Timeout: 5 * time.Second},
		logger:      logger,
	}
}

func (n *HTTPBotNotifier) Notify(notification domain.SubmissionNotification) {
	if n.callbackURL == "" {
		return
	}

	go func() {
		body, err := json.Marshal(notification)
		if err != nil {
			n.logger.Error("failed to marshal callback", zap.Error(err))
			return
		}

		req, err := http.NewRequest(http.MethodPost, n.callbackURL, bytes.NewBuffer(body))
		if err != nil {
			n.logger.Error("failed to create callback request", zap.Error(err))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			n.logger.Warn("callback failed", zap.String("request_id", notification.RequestID), zap.Error(err))
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			n.logger.Warn("callback returned non-2xx",
				zap.String("request_id", notification.RequestID),
				zap.Int("status", resp.StatusCode))
		}
	}()
}
