package user

import (
	"context"
	"errors"
	"log/slog"

	"scaffolding/internal/domain"
)

// ErrNotImplemented is the panic value raised by unimplemented capabilities.
// It is a programming error, not a recoverable failure.
var ErrNotImplemented = errors.New("user: not implemented")

// Stub implements only domain.UserCreator, and not even that.
type Stub struct{}

// CreateUser always panics with ErrNotImplemented.
func (Stub) CreateUser(context.Context, string) error {
	panic(ErrNotImplemented)
}

// ViewModel exposes user actions to the CLI.
type ViewModel struct {
	creator domain.UserCreator
	log     *slog.Logger
}

// NewViewModel returns a view model backed by creator.
func NewViewModel(creator domain.UserCreator, log *slog.Logger) *ViewModel {
	if log == nil {
		log = slog.Default()
	}
	return &ViewModel{creator: creator, log: log}
}

// Create asks the creator to add a user named name.
func (vm *ViewModel) Create(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("user: name required")
	}
	vm.log.Debug("creating user", "name_len", len(name))
	return vm.creator.CreateUser(ctx, name)
}

// Compile-time assertion that Stub implements domain.UserCreator.
var _ domain.UserCreator = Stub{}
