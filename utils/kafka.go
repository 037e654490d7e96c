package utils

import (
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/sharath018/event-registration-backend/config"
	"github.com/sharath018/event-registration-backend/internal/notification"
)

// NewPublisher returns a Kafka-backed notification publisher, or a no-op one
// when KAFKA_BROKERS is empty.
func NewPublisher(cfg *config.Config) notification.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		logrus.Info("KAFKA_BROKERS not set, notifications disabled")
		return notification.NewNoopPublisher()
	}
	return notification.NewKafkaPublisher(NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
}

// NewKafkaWriter builds an async writer. Delivery errors are logged from the
// completion callback since request handlers never wait on the broker.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	logrus.WithFields(logrus.Fields{
		"brokers": brokers,
		"topic":   topic,
	}).Info("kafka publisher configured")

	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logrus.WithError(err).WithField("count", len(messages)).Warn("kafka delivery failed")
			}
		},
	}
}
