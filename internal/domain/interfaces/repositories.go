package interfaces

import "context"

// APIClient is the minimal transport contract a remote data source offers.
type APIClient interface {
	Get(ctx context.Context, endpoint string) (string, error)
	Post(ctx context.Context, endpoint, body string) error
}

// UserCreator creates users.
type UserCreator interface {
	CreateUser(ctx context.Context, name string) error
}

// UserUpdater renames and removes users.
type UserUpdater interface {
	UpdateUser(ctx context.Context, id, name string) error
	DeleteUser(ctx context.Context, id string) error
}

// UserFetcher lists and looks up users.
type UserFetcher interface {
	FetchUsers(ctx context.Context) ([]string, error)
	FetchUser(ctx context.Context, id string) (string, error)
}

// UserRepository is the full user-management capability set.
type UserRepository interface {
	UserCreator
	UserUpdater
	UserFetcher
}
