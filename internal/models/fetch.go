package models

type FetchStatus int

const (
	FetchLoading FetchStatus = iota
	FetchReady
	FetchError
)

func (s FetchStatus) String() string {
	switch s {
	case FetchLoading:
		return "loading"
	case FetchReady:
		return "ready"
	case FetchError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single backend fetch.
type Result[T any] struct {
	Status FetchStatus
	Value  T
	Err    error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{Status: FetchReady, Value: v}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{Status: FetchError, Err: err}
}

func (r Result[T]) Pending() bool {
	return r.Status == FetchLoading
}
