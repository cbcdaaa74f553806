package types

// DefaultErrorMessage replaces an empty failure message so that an Error
// state never carries an empty string.
const DefaultErrorMessage = "unknown error"

// Status identifies the active variant of a TriState.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// TriState is a closed Loading/Success/Error union. The zero value is Loading.
// Values are immutable; a transition replaces the whole value.
type TriState[T any] struct {
	status  Status
	value   T
	message string
}

// Loading returns the Loading variant.
func Loading[T any]() TriState[T] { return TriState[T]{status: StatusLoading} }

// Success returns the Success variant carrying v.
func Success[T any](v T) TriState[T] { return TriState[T]{status: StatusSuccess, value: v} }

// Failed returns the Error variant carrying msg, or DefaultErrorMessage when
// msg is empty.
func Failed[T any](msg string) TriState[T] {
	if msg == "" {
		msg = DefaultErrorMessage
	}
	return TriState[T]{status: StatusError, message: msg}
}

// Status reports the active variant.
func (s TriState[T]) Status() Status { return s.status }

// Value returns the Success payload; ok is false for any other variant.
func (s TriState[T]) Value() (v T, ok bool) {
	if s.status != StatusSuccess {
		return v, false
	}
	return s.value, true
}

// Message returns the Error message; ok is false for any other variant.
func (s TriState[T]) Message() (string, bool) {
	if s.status != StatusError {
		return "", false
	}
	return s.message, true
}

// Match dispatches on the active variant. All three handlers are required,
// so callers cannot forget a case.
func Match[T, R any](
	s TriState[T],
	onLoading func() R,
	onSuccess func(T) R,
	onError func(string) R,
) R {
	switch s.status {
	case StatusSuccess:
		return onSuccess(s.value)
	case StatusError:
		return onError(s.message)
	default:
		return onLoading()
	}
}
