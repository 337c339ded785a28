package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/garsue/watermillzap"

	"userservice/internal/config"
	"userservice/internal/logging"
)

type Router struct {
	router *message.Router
}

// NewRouter subscribes to the users topic and logs every user event it
// receives. With Kafka disabled the router is inert.
func NewRouter(cfg config.KafkaConfig, baseLogger logging.Logger) (*Router, error) {
	if !cfg.Enabled {
		return &Router{router: nil}, nil
	}

	wmlogger := watermillzap.NewLogger(logging.AsZap(baseLogger))

	router, err := message.NewRouter(message.RouterConfig{}, wmlogger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	subCfg := kafka.SubscriberConfig{
		Brokers:       cfg.Brokers,
		Unmarshaler:   kafka.DefaultMarshaler{},
		ConsumerGroup: cfg.GroupID,
		InitializeTopicDetails: &sarama.TopicDetail{
			NumPartitions:     3,
			ReplicationFactor: 1,
		},
		NackResendSleep:     5 * time.Second,
		ReconnectRetrySleep: 10 * time.Second,
	}

	subscriber, err := kafka.NewSubscriber(subCfg, wmlogger)
	if err != nil {
		return nil, fmt.Errorf("create kafka subscriber: %w", err)
	}

	usersTopic := UsersTopic(cfg.TopicPrefix)

	router.AddNoPublisherHandler(
		"user-events-handler",
		usersTopic,
		subscriber,
		userEventHandler(baseLogger.With("component", "user_events_consumer", "topic", usersTopic)),
	)

	return &Router{router: router}, nil
}

// userEventHandler decodes the envelope and logs it. Malformed messages are
// logged and acked so they do not block the partition.
func userEventHandler(logger logging.Logger) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		var env Envelope
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			logger.Error("malformed user event", "uuid", msg.UUID, "error", err)
			return nil
		}

		logger.Info("user event received",
			"uuid", msg.UUID,
			"type", env.Type,
			"correlation_id", env.CorrelationID,
			"occurred_at", env.OccurredAt,
			"payload", string(env.Payload),
		)
		return nil
	}
}

func (r *Router) Run(ctx context.Context) error {
	if r.router == nil {
		return nil // Kafka disabled
	}
	return r.router.Run(ctx)
}

func (r *Router) Close() error {
	if r.router == nil {
		return nil
	}
	return r.router.Close()
}
