package notification

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Notification types published after a successful commit.
const (
	TypeEventCreated          = "event.created"
	TypeEventUpdated          = "event.updated"
	TypeEventDeleted          = "event.deleted"
	TypeParticipantRegistered = "participant.registered"
	TypeParticipantUpdated    = "participant.updated"
	TypeParticipantDeleted    = "participant.deleted"
)

// Notification is the message written to the broker.
type Notification struct {
	ID            string                 `json:"id"`
	Type          string                 `json:"type"`
	OccurredAt    time.Time              `json:"occurred_at"`
	EventID       uint                   `json:"event_id"`
	ParticipantID *uint                  `json:"participant_id,omitempty"`
	Data          map[string]interface{} `json:"data,omitempty"`
}

// New stamps a notification with an id and the current time.
func New(typ string, eventID uint, participantID *uint, data map[string]interface{}) Notification {
	return Notification{
		ID:            uuid.NewString(),
		Type:          typ,
		OccurredAt:    time.Now().UTC(),
		EventID:       eventID,
		ParticipantID: participantID,
		Data:          data,
	}
}

type Publisher interface {
	Publish(ctx context.Context, n Notification) error
	Close() error
}

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer MessageWriter
}

// NewKafkaPublisher publishes notifications keyed by event id so that all
// messages about one event land on the same partition.
func NewKafkaPublisher(w MessageWriter) Publisher {
	return &kafkaPublisher{writer: w}
}

func (p *kafkaPublisher) Publish(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(n.EventID), 10)),
		Value: payload,
		Time:  n.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(n.Type)},
		},
	})
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher is used when no brokers are configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(_ context.Context, n Notification) error {
	logrus.WithFields(logrus.Fields{
		"type":     n.Type,
		"event_id": n.EventID,
	}).Debug("notifications disabled, dropping message")
	return nil
}

func (noopPublisher) Close() error { return nil }

// Emit publishes n and logs a failure instead of returning it. The store
// change has already been committed when this runs.
func Emit(ctx context.Context, p Publisher, n Notification) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, n); err != nil {
		logrus.WithFields(logrus.Fields{
			"type":     n.Type,
			"event_id": n.EventID,
		}).WithError(err).Warn("failed to publish notification")
	}
}
