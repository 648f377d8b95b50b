package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/sirupsen/logrus"
)

// Worker разбирает очередь событий и доставляет их на внешний вебхук.
// Доставка best-effort: после исчерпания ретраев событие теряется,
// авторитетное состояние запроса доступно по API статуса.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину обработки очереди событий
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting dispatch event worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping dispatch event worker.")
				return
			default:
				// BRPop - блокирующее извлечение из хвоста очереди, 0 = ждать бесконечно
				result, err := w.redisClient.BRPop(ctx, 0, eventQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop dispatch event from Redis")
					time.Sleep(w.cfg.WebhookBaseDelay)
					continue
				}

				// result[0] - ключ очереди, result[1] - полезная нагрузка
				payload := result[1]
				var event Event
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal dispatch event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

// deliver отправляет событие на вебхук с экспоненциальными ретраями
func (w *Worker) deliver(ctx context.Context, event Event, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"event_type": event.Type,
		"request_id": event.RequestID,
		"channel":    event.Channel,
	})
	log.Debug("Delivering dispatch event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping event delivery.")
		return
	}

	delay := w.cfg.WebhookBaseDelay
	for attempt := 0; attempt < w.cfg.WebhookMaxRetries; attempt++ {
		if err := w.send(ctx, rawPayload); err != nil {
			log.WithError(err).Warnf("Failed to deliver event. Retrying in %v. Retries left: %d",
				delay, w.cfg.WebhookMaxRetries-1-attempt)
			time.Sleep(delay)
			delay *= 2
			continue
		}
		log.Info("Dispatch event delivered successfully.")
		return
	}

	log.Errorf("Failed to deliver dispatch event after %d retries.", w.cfg.WebhookMaxRetries)
}

// send выполняет один HTTP-запрос к вебхуку
func (w *Worker) send(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body) //nolint:errcheck
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("webhook responded with status " + resp.Status)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
