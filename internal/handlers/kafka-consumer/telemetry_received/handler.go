package telemetry_received

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	telemetryservice "service/internal/service/telemetry"
	"service/pkg/logger"
)

type receivedEvent struct {
	OrderID          string  `json:"orderId"`
	CurrentLatitude  float64 `json:"currentLatitude"`
	CurrentLongitude float64 `json:"currentLongitude"`
}

type Handler struct {
	telemetryService         Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, telemetryService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		telemetryService:         telemetryService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("telemetry.received: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("telemetry.received: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event receivedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("telemetry.received handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("offset", message.Offset),
	)

	if _, err := uuid.Parse(event.OrderID); err != nil {
		msgLog.Warn("telemetry.received handler got malformed order id")
		sess.MarkMessage(message, "")
		return false
	}

	sample, err := h.telemetryService.Ingest(ctx, event.OrderID, event.CurrentLatitude, event.CurrentLongitude)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("telemetry.received handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, telemetryservice.ErrInvalidLatitude),
			errors.Is(err, telemetryservice.ErrInvalidLongitude):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("telemetry.received handler got sample with invalid coordinates")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("telemetry.received handler failed to ingest sample")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("timestamp", sample.Timestamp),
	).Info("telemetry.received: ingested")

	sess.MarkMessage(message, "")
	return false
}
