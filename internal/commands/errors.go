package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to categorised command errors.
const (
	CodeValidationFailed = "LOCALIZE_COMMAND_VALIDATION_FAILED"
	CodeContextCanceled  = "LOCALIZE_COMMAND_CANCELED"
	CodeContextTimeout   = "LOCALIZE_COMMAND_TIMEOUT"
	CodeContextError     = "LOCALIZE_COMMAND_CONTEXT_ERROR"
	CodeExecutionFailed  = "LOCALIZE_COMMAND_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	return wrap(err, goerrors.CategoryValidation, "command validation failed", CodeValidationFailed)
}

func wrapContextError(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return wrap(err, goerrors.CategoryCommand, "command execution cancelled", CodeContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return wrap(err, goerrors.CategoryCommand, "command execution deadline exceeded", CodeContextTimeout)
	default:
		return wrap(err, goerrors.CategoryCommand, "command context error", CodeContextError)
	}
}

func wrapExecuteError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return wrapContextError(err)
	}
	return wrap(err, goerrors.CategoryCommand, "command execution failed", CodeExecutionFailed)
}

func wrap(err error, category goerrors.Category, message, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, message).WithTextCode(code)
}
