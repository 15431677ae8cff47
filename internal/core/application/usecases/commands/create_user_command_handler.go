package commands

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the requested email address is
// already taken by another user.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// CreateUserCommandHandler handles the business logic for user registration.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for user registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user registration command.
// Rejects the registration with ErrEmailAlreadyRegistered when another user
// already holds the email. Returns the created user on success.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", ErrEmailAlreadyRegistered, cmd.Email())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	aggregate, err := user.NewUser(cmd.Email(), cmd.Name())
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
