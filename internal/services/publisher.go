package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/segmentio/kafka-go"
)

// Payment lifecycle event types.
const (
	EventFundingInitiated    = "funding.initiated"
	EventFundingCompleted    = "funding.completed"
	EventFundingFailed       = "funding.failed"
	EventWithdrawalInitiated = "withdrawal.initiated"
	EventWithdrawalCompleted = "withdrawal.completed"
	EventWithdrawalReversed  = "withdrawal.reversed"
)

// EventPublisher writes payment events to Kafka. Publishing is best effort:
// failures are logged and never undo a committed payment.
type EventPublisher struct {
	writer KafkaWriter
}

func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// Publish emits one event keyed by payment reference, so events of a payment
// stay ordered within a partition.
func (p *EventPublisher) Publish(ctx context.Context, eventType string, rec *models.PaymentRecordDB) {
	if p == nil || p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "reference", rec.Reference, "type", eventType)
		return
	}

	event := models.PaymentEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Reference: rec.Reference,
		UserID:    rec.UserID.String(),
		Gateway:   rec.Gateway,
		Amount:    rec.Amount,
		Fee:       rec.Fee,
		NetAmount: rec.NetAmount,
		Status:    rec.Status,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal payment event for Kafka", "reference", rec.Reference, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(rec.Reference),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish payment event to Kafka", "reference", rec.Reference, "type", eventType, "error", err)
		return
	}
	logger.Log.Infow("Payment event published to Kafka", "reference", rec.Reference, "type", eventType, "status", rec.Status)
}
