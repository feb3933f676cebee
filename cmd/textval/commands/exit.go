package commands

import (
	"errors"

	"github.com/mrled/suns/textval/internal/textcheck"
)

// Exit codes returned by the textval binary
const (
	ExitFailure         = 1
	ExitInvalidArgument = 2
)

// An error type that includes an exit code
type ExitError struct {
	Code int
	Err  error
}

// Implement the error interface
func (e *ExitError) Error() string {
	return e.Err.Error()
}
func (e *ExitError) Unwrap() error {
	return e.Err
}

func ExitWithCode(code int, err error) *ExitError {
	if err == nil {
		return nil
	}
	return &ExitError{
		Code: code,
		Err:  err,
	}
}

// checkError maps a check failure to an exit code
func checkError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, textcheck.ErrInvalidArgument) {
		return ExitWithCode(ExitInvalidArgument, err)
	}
	return ExitWithCode(ExitFailure, err)
}
