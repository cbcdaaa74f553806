package app

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"scaffolding/internal/domain"
	"scaffolding/internal/logging"
	"scaffolding/internal/metrics"
	"scaffolding/internal/services/home"
	"scaffolding/internal/services/user"
)

// Wire bundles the logger, metrics and services for the CLI.
type Wire struct {
	Config   Config
	Log      *slog.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Collector
	Users    *user.ViewModel

	launch   home.Launch
	greeting home.Producer[string]
	releases home.Producer[[]domain.Record]
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return nil, err
	}

	launch, err := home.ParseLaunch(cfg.Home.Launch)
	if err != nil {
		return nil, err
	}

	w := &Wire{
		Config:   cfg,
		Log:      log,
		Registry: reg,
		Metrics:  collector,
		Users:    user.NewViewModel(user.Stub{}, log),
		launch:   launch,
	}

	switch cfg.Home.Producers {
	case ProducersDelayed:
		w.greeting = home.DelayedGreeting(cfg.Home.GreetingDelay, cfg.Home.Greeting)
		w.releases = home.DelayedReleases(cfg.Home.RecordsDelay)
	default:
		w.greeting = home.FailingGreeting
		w.releases = home.FailingReleases
	}
	return w, nil
}

// NewHome starts a home screen session with metrics attached from the
// initial state on.
func (w *Wire) NewHome(ctx context.Context) *home.ViewModel {
	return home.New(ctx, w.greeting, w.releases,
		home.WithLaunch(w.launch),
		home.WithLogger(w.Log),
		home.WithSubscriber(w.Metrics.Observer()),
	)
}
