package interfaces

import domaintypes "scaffolding/internal/domain/types"

// HomeViewModel is the read-only surface the home screen renders from.
type HomeViewModel interface {
	// State returns the latest snapshot without blocking.
	State() domaintypes.HomeState
	// Subscribe registers fn for every later transition and returns a func
	// that removes it. Past transitions are not replayed.
	Subscribe(fn func(domaintypes.HomeState)) (cancel func())
	// Done is closed once both axes have settled.
	Done() <-chan struct{}
}
