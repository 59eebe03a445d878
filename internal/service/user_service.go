// Package service holds the business rules for the user CRUD operations
// and the cross-service order aggregation.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopnet/user-service/internal/events"
	"github.com/shopnet/user-service/internal/mapper"
	"github.com/shopnet/user-service/internal/model"
	"github.com/shopnet/user-service/internal/repository"
	"github.com/shopnet/user-service/internal/validation"
)

// OrderAggregator fetches the orders belonging to one user from the peer
// order service.
type OrderAggregator interface {
	ForUser(ctx context.Context, userID int64) ([]model.Order, error)
}

// UserService orchestrates validation, the user store, the mapper and the
// order aggregator. It is the only component with decision logic; the
// handler layer translates its outcomes into envelopes and status codes.
type UserService struct {
	repo      repository.UserRepository
	orders    OrderAggregator
	publisher *events.Publisher
}

func NewUserService(repo repository.UserRepository, orders OrderAggregator, publisher *events.Publisher) *UserService {
	return &UserService{
		repo:      repo,
		orders:    orders,
		publisher: publisher,
	}
}

// Save validates the request, stamps the registration date and persists a
// new user. The request itself is echoed back as the acknowledgment; the
// generated id is not part of this response.
func (s *UserService) Save(ctx context.Context, req *model.UserEditRequest) (*model.UserEditRequest, error) {
	if violations := validation.Violations(*req); len(violations) > 0 {
		return nil, &model.ValidationError{Violations: violations}
	}

	user := mapper.RequestToUser(req, time.Now().UTC())
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserCreated, events.UserCreatedEvent{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}); err != nil {
		slog.Error("failed to publish user.created event", slog.String("error", err.Error()))
	}
	return req, nil
}

// GetByID looks a user up. Absence is reported through the boolean, never
// as an error.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.UserView, bool, error) {
	user, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return mapper.UserToView(user), true, nil
}

// GetAll returns every stored user as a view. An empty slice is a valid
// outcome.
func (s *UserService) GetAll(ctx context.Context) ([]model.UserView, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.UserView, 0, len(users))
	for i := range users {
		views = append(views, *mapper.UserToView(&users[i]))
	}
	return views, nil
}

// Update merges the request's name and email over an existing record. The
// registration date is carried forward from the stored row, never from the
// request. A missing or unknown id fails with model.ErrUserNotFound.
func (s *UserService) Update(ctx context.Context, req *model.UserEditRequest) (*model.UserEditRequest, error) {
	if violations := validation.Violations(*req); len(violations) > 0 {
		return nil, &model.ValidationError{Violations: violations}
	}
	if req.ID == nil {
		return nil, model.ErrUserNotFound
	}

	existing, found, err := s.repo.FindByID(ctx, *req.ID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, model.ErrUserNotFound
	}

	user := mapper.RequestToUser(req, existing.RegistrationDate)
	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	if !updated {
		// The row disappeared between the lookup and the write.
		return nil, model.ErrUserNotFound
	}

	if err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserUpdated, events.UserUpdatedEvent{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}); err != nil {
		slog.Error("failed to publish user.updated event", slog.String("error", err.Error()))
	}
	return req, nil
}

// DeleteByID removes a user and reports whether one existed. The handler
// maps the boolean to the wire-visible 1/0 integer; business logic only
// ever sees found/not-found.
func (s *UserService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	_, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		if err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserDeleted, events.UserDeletedEvent{
			UserID: id,
		}); err != nil {
			slog.Error("failed to publish user.deleted event", slog.String("error", err.Error()))
		}
	}
	return deleted, nil
}

// OrdersForUser delegates to the order aggregator. The call is synchronous
// and uncached; a peer failure propagates as model.ErrOrdersUnavailable.
func (s *UserService) OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.orders.ForUser(ctx, userID)
}
