// Package outcome provides a three-state result type used at storage,
// network and repository boundaries instead of returning bare errors.
//
// An Outcome is exactly one of:
//
//	Success(value) – the operation completed and produced value
//	Error(cause)   – the operation failed with cause
//	Loading        – an observed query has not produced a value yet
//
// Callers handle all three variants with Match.
package outcome

import (
	"errors"
	"fmt"
)

// Kind identifies the active variant of an Outcome.
type Kind uint8

const (
	KindLoading Kind = iota
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindLoading:
		return "loading"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

var (
	// ErrLoading is returned by Get when the outcome has not resolved yet.
	ErrLoading = errors.New("outcome is still loading")

	// ErrNilCause replaces a nil error passed to Failure.
	ErrNilCause = errors.New("failure without cause")
)

// Outcome is a tagged union over Success, Error and Loading.
// The zero value is Loading.
type Outcome[T any] struct {
	kind  Kind
	value T
	err   error
}

// Success wraps v as a successful outcome.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{kind: KindSuccess, value: v}
}

// Failure wraps err as a failed outcome. A nil err is replaced by ErrNilCause.
func Failure[T any](err error) Outcome[T] {
	if err == nil {
		err = ErrNilCause
	}
	return Outcome[T]{kind: KindError, err: err}
}

// Loading returns the in-flight marker.
func Loading[T any]() Outcome[T] {
	return Outcome[T]{kind: KindLoading}
}

func (o Outcome[T]) Kind() Kind      { return o.kind }
func (o Outcome[T]) IsSuccess() bool { return o.kind == KindSuccess }
func (o Outcome[T]) IsError() bool   { return o.kind == KindError }
func (o Outcome[T]) IsLoading() bool { return o.kind == KindLoading }
func (o Outcome[T]) Value() T        { return o.value }
func (o Outcome[T]) Err() error      { return o.err }

// Get converts the outcome back into a (value, error) pair.
func (o Outcome[T]) Get() (T, error) {
	switch o.kind {
	case KindSuccess:
		return o.value, nil
	case KindError:
		var zero T
		return zero, o.err
	default:
		var zero T
		return zero, ErrLoading
	}
}

func (o Outcome[T]) String() string {
	switch o.kind {
	case KindSuccess:
		return fmt.Sprintf("Success(%v)", o.value)
	case KindError:
		return fmt.Sprintf("Error(%v)", o.err)
	default:
		return "Loading"
	}
}

// Match calls exactly one handler depending on the active variant and
// returns its result. All three handlers must be non-nil.
func Match[T, R any](o Outcome[T], onSuccess func(T) R, onError func(error) R, onLoading func() R) R {
	if onSuccess == nil || onError == nil || onLoading == nil {
		panic("outcome: Match requires all three handlers")
	}
	switch o.kind {
	case KindSuccess:
		return onSuccess(o.value)
	case KindError:
		return onError(o.err)
	default:
		return onLoading()
	}
}

// Map transforms a success value; Error and Loading pass through.
func Map[T, R any](o Outcome[T], fn func(T) R) Outcome[R] {
	switch o.kind {
	case KindSuccess:
		return Success(fn(o.value))
	case KindError:
		return Failure[R](o.err)
	default:
		return Loading[R]()
	}
}

// PanicError carries a value recovered by Catch.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Catch runs fn and converts its result into an Outcome. A returned error
// and a panic both become Error; fn never propagates a panic to the caller.
func Catch[T any](fn func() (T, error)) (o Outcome[T]) {
	defer func() {
		if p := recover(); p != nil {
			o = Failure[T](&PanicError{Value: p})
		}
	}()

	v, err := fn()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}
