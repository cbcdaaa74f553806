package home

import (
	"context"
	"errors"
	"time"

	"scaffolding/internal/domain"
	domaintypes "scaffolding/internal/domain/types"
)

// Producer is a one-shot asynchronous operation yielding a value or an error.
type Producer[T any] func(ctx context.Context) (T, error)

const (
	// DefaultGreeting is what DelayedGreeting yields when given no message.
	DefaultGreeting = "Hello from the view model"

	greetingFailure = "forced failure in greeting flow"
	releasesFailure = "forced failure in releases flow"
)

var (
	// ErrGreetingFailed is returned by FailingGreeting.
	ErrGreetingFailed = errors.New(greetingFailure)
	// ErrReleasesFailed is returned by FailingReleases.
	ErrReleasesFailed = errors.New(releasesFailure)
)

// FailingGreeting fails immediately, before any delay or value.
func FailingGreeting(context.Context) (string, error) {
	return "", ErrGreetingFailed
}

// FailingReleases fails immediately, before any delay or value.
func FailingReleases(context.Context) ([]domain.Record, error) {
	return nil, ErrReleasesFailed
}

// DelayedGreeting succeeds with msg after d.
func DelayedGreeting(d time.Duration, msg string) Producer[string] {
	if msg == "" {
		msg = DefaultGreeting
	}
	return func(ctx context.Context) (string, error) {
		if err := sleep(ctx, d); err != nil {
			return "", err
		}
		return msg, nil
	}
}

// DelayedReleases succeeds with the fixed release list after d.
func DelayedReleases(d time.Duration) Producer[[]domain.Record] {
	return func(ctx context.Context) ([]domain.Record, error) {
		if err := sleep(ctx, d); err != nil {
			return nil, err
		}
		return domaintypes.AndroidReleases(), nil
	}
}

// Succeed returns a producer that yields v at once.
func Succeed[T any](v T) Producer[T] {
	return func(context.Context) (T, error) { return v, nil }
}

// Fail returns a producer that fails at once with err.
func Fail[T any](err error) Producer[T] {
	return func(context.Context) (T, error) {
		var zero T
		return zero, err
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
