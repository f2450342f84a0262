// Package result implements the Loading/Success/Failure wrapper emitted by
// every repository operation, and the stream producer that enforces its
// ordering contract.
package result

import "context"

// State discriminates the three variants of a Result.
type State int

const (
	// StateLoading is emitted once, before any I/O begins.
	StateLoading State = iota
	// StateSuccess carries the decoded value; terminal.
	StateSuccess
	// StateFailure carries a human-readable reason; terminal.
	StateFailure
)

// Result is a tagged union: Loading (no payload), Success(Data) or
// Failure(Reason). Consumers switch on State; producers never emit after a
// terminal variant.
type Result[T any] struct {
	State  State
	Data   T
	Reason string
}

// Loading constructs the non-terminal variant.
func Loading[T any]() Result[T] { return Result[T]{State: StateLoading} }

// Success constructs the terminal success variant.
func Success[T any](v T) Result[T] { return Result[T]{State: StateSuccess, Data: v} }

// Failure constructs the terminal failure variant.
func Failure[T any](reason string) Result[T] {
	return Result[T]{State: StateFailure, Reason: reason}
}

// Terminal reports whether no further event may follow this one.
func (r Result[T]) Terminal() bool { return r.State != StateLoading }

// Stream is the sequence produced by one operation invocation: exactly one
// Loading followed by exactly one terminal event, then the channel closes.
type Stream[T any] <-chan Result[T]

// Run invokes op on its own goroutine and returns its Stream. Loading is
// buffered into the channel before op starts, so it is observable even when
// op fails synchronously. The channel capacity covers both events; an
// abandoned consumer therefore never blocks the producer, and cancelling ctx
// aborts whatever I/O op has in flight.
func Run[T any](ctx context.Context, op func(ctx context.Context) (T, error)) Stream[T] {
	out := make(chan Result[T], 2)
	out <- Loading[T]()
	go func() {
		defer close(out)
		v, err := op(ctx)
		if err != nil {
			out <- Failure[T](err.Error())
			return
		}
		out <- Success(v)
	}()
	return out
}

// Await drains a stream and returns its terminal event. It is a convenience
// for callers that have no use for the Loading notification.
func Await[T any](s Stream[T]) Result[T] {
	var last Result[T]
	for r := range s {
		last = r
	}
	return last
}
