package worker

// email_worker.go
// Processes notification mails from QueueEmail: change notices to single
// employees and the broadcast to the whole roster. Sends are retried a few
// times, then parked in the DLQ — a broken SMTP relay never loses jobs.

import (
	"context"
	"encoding/json"
	"time"

	"einsatzplan/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	maxSendAttempts = 3
	retryBackoff    = 10 * time.Second
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type EmailWorker struct {
	rdb    *redis.Client
	mailer *infra.Mailer
}

func NewEmailWorker(rdb *redis.Client, mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{rdb: rdb, mailer: mailer}
}

// Process sends one notification mail, retrying transient failures.
func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.To == "" {
		log.Warn().Msg("email_worker: empty recipient — skipping")
		return
	}

	var lastErr error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		lastErr = w.mailer.Send(payload.To, payload.Subject, payload.Body)
		if lastErr == nil {
			log.Info().Str("to", payload.To).Str("subject", payload.Subject).Msg("email_worker: mail sent")
			return
		}
		log.Warn().Err(lastErr).Str("to", payload.To).Int("attempt", attempt).Msg("email_worker: send failed")

		select {
		case <-ctx.Done():
			return
		case <-time.After(retryBackoff):
		}
	}

	SendToDLQ(ctx, w.rdb, QueueEmail, "email", raw, lastErr.Error(), maxSendAttempts)
}
