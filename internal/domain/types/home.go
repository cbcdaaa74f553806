package types

import "slices"

// HomeState is the aggregate presentation state of the home screen. Its two
// axes are independent.
type HomeState struct {
	Greeting TriState[string]
	Records  TriState[[]Record]
}

// InitialHomeState returns the state a screen session starts with: both axes
// Loading.
func InitialHomeState() HomeState {
	return HomeState{
		Greeting: Loading[string](),
		Records:  Loading[[]Record](),
	}
}

// WithGreeting returns a copy of s with the greeting axis replaced.
func (s HomeState) WithGreeting(g TriState[string]) HomeState {
	s.Greeting = g
	return s
}

// WithRecords returns a copy of s with the records axis replaced. The record
// slice is cloned so later mutation by the caller cannot leak in.
func (s HomeState) WithRecords(r TriState[[]Record]) HomeState {
	if v, ok := r.Value(); ok {
		r = Success(slices.Clone(v))
	}
	s.Records = r
	return s
}

// Clone returns a copy of s that shares no memory with it. Snapshots handed
// to readers are clones so no reader can rewrite the owner's state.
func (s HomeState) Clone() HomeState {
	return s.WithRecords(s.Records)
}

// Settled reports whether neither axis is Loading.
func (s HomeState) Settled() bool {
	return s.Greeting.Status() != StatusLoading && s.Records.Status() != StatusLoading
}
