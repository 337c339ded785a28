package kafka

import (
	"context"
	"fmt"

	appuser "userservice/internal/app/user"
	"userservice/internal/config"
	"userservice/internal/logging"
)

const (
	UserCreatedType = "UserCreated"
	UserUpdatedType = "UserUpdated"
	UserDeletedType = "UserDeleted"
)

// UsersTopic is the topic user events are published to and consumed from.
func UsersTopic(prefix string) string {
	return prefix + "users"
}

type userEvents struct {
	bus    Bus
	topic  string
	logger logging.Logger
}

func NewUserEvents(bus Bus, cfg config.KafkaConfig, logger logging.Logger) appuser.Events {
	return &userEvents{
		bus:    bus,
		topic:  UsersTopic(cfg.TopicPrefix),
		logger: logger.With("component", "user_events"),
	}
}

func (e *userEvents) UserCreated(ctx context.Context, u *appuser.UserDto) error {
	if err := e.bus.Publish(ctx, e.topic, UserCreatedType, u); err != nil {
		return fmt.Errorf("publish UserCreated: %w", err)
	}
	return nil
}

func (e *userEvents) UserUpdated(ctx context.Context, u *appuser.UserDto) error {
	if err := e.bus.Publish(ctx, e.topic, UserUpdatedType, u); err != nil {
		return fmt.Errorf("publish UserUpdated: %w", err)
	}
	return nil
}

func (e *userEvents) UserDeleted(ctx context.Context, id int64) error {
	payload := struct {
		ID int64 `json:"id"`
	}{ID: id}

	if err := e.bus.Publish(ctx, e.topic, UserDeletedType, payload); err != nil {
		return fmt.Errorf("publish UserDeleted: %w", err)
	}
	return nil
}
