package envgroup

import "errors"

// Result holds the outcome of a typed lookup: exactly one of a present value,
// an absent key, or a cast failure.
type Result[T any] struct {
	value T
	err   error // nil, *AbsentError, or *CastError
}

func presentResult[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func errResult[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Get returns the parsed value, or the *AbsentError / *CastError describing
// why there is none.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Must returns the parsed value or panics with the error message.
// Intended for application edges that want fail-fast startup.
func (r Result[T]) Must() T {
	if r.err != nil {
		panic(r.err.Error())
	}
	return r.value
}

// OrDefault returns the parsed value or the provided default.
func (r Result[T]) OrDefault(defaultVal T) T {
	if r.err != nil {
		return defaultVal
	}
	return r.value
}

// IsPresent reports whether the lookup produced a usable value.
func (r Result[T]) IsPresent() bool {
	return r.err == nil
}

// IsAbsent reports whether the key was missing from the environment.
func (r Result[T]) IsAbsent() bool {
	var absent *AbsentError
	return errors.As(r.err, &absent)
}

// IsCastFailure reports whether a value was present but unparseable.
func (r Result[T]) IsCastFailure() bool {
	var cast *CastError
	return errors.As(r.err, &cast)
}
