package checker

import "errors"

// ErrInvalidInput is matched by every validation failure of a check request.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes a caller-correctable problem with a check request.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

func inputError(msg string) error {
	return &InputError{Msg: msg}
}
