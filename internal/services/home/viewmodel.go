package home

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"scaffolding/internal/domain"
	domaintypes "scaffolding/internal/domain/types"
)

// Launch selects how the two producers are started.
type Launch int

const (
	// LaunchSequential runs the records producer only after the greeting
	// producer's outcome has been applied.
	LaunchSequential Launch = iota
	// LaunchParallel runs both producers at once.
	LaunchParallel
)

// String returns the config spelling of the launch mode.
func (l Launch) String() string {
	switch l {
	case LaunchSequential:
		return "sequential"
	case LaunchParallel:
		return "parallel"
	default:
		return fmt.Sprintf("launch(%d)", int(l))
	}
}

// ParseLaunch converts the config spelling back into a Launch.
func ParseLaunch(s string) (Launch, error) {
	switch s {
	case "", "sequential":
		return LaunchSequential, nil
	case "parallel":
		return LaunchParallel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLaunch, s)
	}
}

// ErrInvalidLaunch is returned by ParseLaunch for unknown modes.
var ErrInvalidLaunch = errors.New("invalid launch mode")

// Option configures a ViewModel.
type Option func(*ViewModel)

// WithLaunch sets the launch mode.
func WithLaunch(l Launch) Option { return func(vm *ViewModel) { vm.launch = l } }

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(vm *ViewModel) {
		if l != nil {
			vm.log = l
		}
	}
}

// WithSubscriber registers fn before the producers start, so it sees every
// transition.
func WithSubscriber(fn func(domain.HomeState)) Option {
	return func(vm *ViewModel) { vm.Subscribe(fn) }
}

// ViewModel owns the home screen state. It is the single writer; everything
// else reads snapshots or subscribes.
type ViewModel struct {
	id     uuid.UUID
	launch Launch
	log    *slog.Logger

	state atomic.Pointer[domaintypes.HomeState]

	// transit serializes apply+fan-out so delivery order equals transition order.
	transit sync.Mutex

	mu     sync.Mutex
	subs   map[int]func(domain.HomeState)
	nextID int

	done chan struct{}
}

// New creates a ViewModel in the all-Loading state and starts the producers.
// ctx bounds the producers' lifetime; it is not a per-axis cancel switch.
func New(
	ctx context.Context,
	greeting Producer[string],
	records Producer[[]domain.Record],
	opts ...Option,
) *ViewModel {
	vm := &ViewModel{
		id:   uuid.New(),
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		subs: make(map[int]func(domain.HomeState)),
		done: make(chan struct{}),
	}
	for _, o := range opts {
		o(vm)
	}
	vm.log = vm.log.With("session_id", vm.id.String())

	initial := domaintypes.InitialHomeState()
	vm.state.Store(&initial)

	vm.log.Debug("home view model started", "launch", vm.launch.String())
	go vm.run(ctx, greeting, records)
	return vm
}

// SessionID identifies this screen session in logs.
func (vm *ViewModel) SessionID() uuid.UUID { return vm.id }

// State returns a copy of the latest snapshot.
func (vm *ViewModel) State() domain.HomeState { return vm.state.Load().Clone() }

// Done is closed once both axes have settled.
func (vm *ViewModel) Done() <-chan struct{} { return vm.done }

// Subscribe registers fn for every later transition. Callbacks run on the
// producer goroutine, one at a time; they must not block for long.
func (vm *ViewModel) Subscribe(fn func(domain.HomeState)) (cancel func()) {
	vm.mu.Lock()
	id := vm.nextID
	vm.nextID++
	vm.subs[id] = fn
	vm.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			vm.mu.Lock()
			delete(vm.subs, id)
			vm.mu.Unlock()
		})
	}
}

// run drives both producers and closes done once both axes settled. The
// joined producer error only feeds the settled log line; the failures
// themselves already live in the view state.
func (vm *ViewModel) run(ctx context.Context, greeting Producer[string], records Producer[[]domain.Record]) {
	defer close(vm.done)

	// Each loader applies its outcome before returning the producer error, so
	// the error never reaches the sibling axis.
	loadGreeting := func() error {
		v, err := greeting(ctx)
		vm.update(func(s domain.HomeState) domain.HomeState {
			return s.WithGreeting(resolve(v, err))
		})
		return err
	}
	loadRecords := func() error {
		v, err := records(ctx)
		vm.update(func(s domain.HomeState) domain.HomeState {
			return s.WithRecords(resolve(v, err))
		})
		return err
	}

	var err error
	switch vm.launch {
	case LaunchParallel:
		// A plain Group: a failing axis must not cancel the other one.
		var g errgroup.Group
		g.Go(loadGreeting)
		g.Go(loadRecords)
		err = g.Wait()
	default:
		err = errors.Join(loadGreeting(), loadRecords())
	}

	s := vm.State()
	vm.log.Debug("home view model settled",
		"greeting", s.Greeting.Status().String(),
		"records", s.Records.Status().String(),
		"failed", err != nil,
	)
}

func (vm *ViewModel) update(fn func(domain.HomeState) domain.HomeState) {
	vm.transit.Lock()
	defer vm.transit.Unlock()

	next := fn(*vm.state.Load())
	vm.state.Store(&next)

	vm.mu.Lock()
	subs := make([]func(domain.HomeState), 0, len(vm.subs))
	for _, fn := range vm.subs {
		subs = append(subs, fn)
	}
	vm.mu.Unlock()

	for _, fn := range subs {
		fn(next.Clone())
	}
}

func resolve[T any](v T, err error) domaintypes.TriState[T] {
	if err != nil {
		return domaintypes.Failed[T](err.Error())
	}
	return domaintypes.Success(v)
}

// Compile-time assertion that ViewModel implements domain.HomeViewModel.
var _ domain.HomeViewModel = (*ViewModel)(nil)
