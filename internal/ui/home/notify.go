package home

import (
	"sync"

	"scaffolding/internal/domain"
)

// WatchErrors calls notify once for every axis of vm that transitions into
// Error after the call. An axis that is already Error is reported at once.
//
// notify runs with an internal lock held, so calls never overlap and follow
// transition order even though the first check runs on the caller's goroutine
// and later ones on the producer goroutine.
func WatchErrors(vm domain.HomeViewModel, notify func(message string)) (cancel func()) {
	var (
		mu       sync.Mutex
		greeting bool
		records  bool
	)
	check := func(s domain.HomeState) {
		mu.Lock()
		defer mu.Unlock()
		if msg, ok := s.Greeting.Message(); ok && !greeting {
			greeting = true
			notify(msg)
		}
		if msg, ok := s.Records.Message(); ok && !records {
			records = true
			notify(msg)
		}
	}

	cancel = vm.Subscribe(check)
	check(vm.State())
	return cancel
}
