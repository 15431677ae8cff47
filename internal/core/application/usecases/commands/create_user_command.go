package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to register a new user.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	email kernel.Email
	name  string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a new user.
// The email must be a constructed value and the name must not be empty;
// length rules are enforced by the User entity.
func NewCreateUserCommand(email kernel.Email, name string) (CreateUserCommand, error) {
	userCommand := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setEmail(email),
		userCommand.setName(name),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Email returns the email address to register.
func (c CreateUserCommand) Email() kernel.Email {
	return c.email
}

// Name returns the display name to register.
func (c CreateUserCommand) Name() string {
	return c.name
}

func (c *CreateUserCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *CreateUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
