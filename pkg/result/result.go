package result

import pkgerrors "mindvault/pkg/errors"

// Result is the uniform envelope returned by every mutating coordinator
// command and every external service call: either a success carrying data
// or a failure carrying an error. Callers must check Success (or use
// Unwrap) before touching Data.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`

	err error
}

// OK creates a success result carrying data.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail creates a failure result from an error.
func Fail[T any](err error) Result[T] {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return Result[T]{Success: false, Error: msg, err: err}
}

// FailMessage creates a failure result from a service-provided message.
func FailMessage[T any](message string) Result[T] {
	return Result[T]{
		Success: false,
		Error:   message,
		err:     pkgerrors.NewServiceFailureError(message),
	}
}

// Err returns the failure error, or nil for a success.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	return pkgerrors.NewServiceFailureError(r.Error)
}

// Unwrap returns the data and the failure error in Go's usual two-value shape.
func (r Result[T]) Unwrap() (T, error) {
	return r.Data, r.Err()
}
