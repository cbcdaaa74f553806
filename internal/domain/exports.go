package domain

import (
	interfaces "scaffolding/internal/domain/interfaces"
	types "scaffolding/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Status    = types.Status
	HomeState = types.HomeState
	Record    = types.Record
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	APIClient      = interfaces.APIClient
	UserCreator    = interfaces.UserCreator
	UserUpdater    = interfaces.UserUpdater
	UserFetcher    = interfaces.UserFetcher
	UserRepository = interfaces.UserRepository
	HomeViewModel  = interfaces.HomeViewModel
)

// Status values re-exported for switch statements outside the domain.
const (
	StatusLoading = types.StatusLoading
	StatusSuccess = types.StatusSuccess
	StatusError   = types.StatusError
)
