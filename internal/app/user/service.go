package user

import (
	"context"
	"fmt"

	dom "userservice/internal/domain/user"
	"userservice/internal/logging"
)

type Service interface {
	List(ctx context.Context) ([]UserDto, error)
	GetById(ctx context.Context, id int64) (*UserDto, error)
	Create(ctx context.Context, input CreateUserInput) (*UserDto, error)
	Update(ctx context.Context, input UpdateUserInput) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   dom.Repository
	events Events
	logger logging.Logger
}

func NewService(repo dom.Repository, events Events, logger logging.Logger) Service {
	if events == nil {
		events = NoopEvents{}
	}
	return &service{
		repo:   repo,
		events: events,
		logger: logger.With("component", "user_service"),
	}
}

func (s *service) List(ctx context.Context) ([]UserDto, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}

	return toDTOs(users), nil
}

func (s *service) GetById(ctx context.Context, id int64) (*UserDto, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !IsNotFound(err) {
			s.logger.Error("failed to get user", "error", err, "id", id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return toDTO(u), nil
}

func (s *service) Create(ctx context.Context, input CreateUserInput) (*UserDto, error) {
	u := &dom.User{
		Name:  input.Name,
		Email: input.Email,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", input.Email)
		return nil, fmt.Errorf("create user: %w", err)
	}

	dto := toDTO(u)

	if err := s.events.UserCreated(ctx, dto); err != nil {
		s.logger.Error("failed to publish UserCreated event", "error", err, "id", dto.Id)
	}

	return dto, nil
}

// Update overwrites name and email. It does not check that the user exists.
func (s *service) Update(ctx context.Context, input UpdateUserInput) error {
	u := &dom.User{
		ID:    input.ID,
		Name:  input.Name,
		Email: input.Email,
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("failed to update user", "error", err, "id", input.ID)
		return fmt.Errorf("update user: %w", err)
	}

	if err := s.events.UserUpdated(ctx, toDTO(u)); err != nil {
		s.logger.Error("failed to publish UserUpdated event", "error", err, "id", u.ID)
	}

	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete user", "error", err, "id", id)
		return fmt.Errorf("delete user: %w", err)
	}

	if err := s.events.UserDeleted(ctx, id); err != nil {
		s.logger.Error("failed to publish UserDeleted event", "error", err, "id", id)
	}

	return nil
}
