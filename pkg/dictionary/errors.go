package dictionary

import "errors"

var (
	ErrZeroCapacity   = errors.New("cannot create a zero-sized dictionary")
	ErrLengthMismatch = errors.New("keys and values differ in length")
	ErrEmptyInput     = errors.New("cannot create a dictionary from empty input")
	ErrModified       = errors.New("dictionary modified during iteration")
)

// UsageError is the panic value for calls that break a precondition, such as
// asking for a zero-sized dictionary. It is never returned for a missing key.
type UsageError struct {
	Op  string
	Err error
}

func (e *UsageError) Error() string {
	return "dictionary: " + e.Op + ": " + e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func fault(op string, err error) {
	panic(&UsageError{Op: op, Err: err})
}
