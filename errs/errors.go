// Package errs defines the error values returned by the piecewise packages.
//
// Errors fall into two classes. Construction errors (ErrConstruction) are
// returned while building a partition and leave the builder unchanged.
// Operation errors (ErrOperation) are returned by the algebraic engines.
// Every sentinel matches its class with errors.Is:
//
//	if errors.Is(err, errs.ErrConstruction) { ... }
//	if errors.Is(err, errs.ErrOverlap) { ... }
package errs

import "errors"

// Error classes.
var (
	// ErrConstruction is the class of all errors raised while building a partition.
	ErrConstruction = errors.New("piecewise: construction error")
	// ErrOperation is the class of all errors raised by combine and convolve.
	ErrOperation = errors.New("piecewise: operation error")
)

// Construction errors.
var (
	ErrOverlap          error = &classError{msg: "piecewise: segment overlaps previous segment", class: ErrConstruction}
	ErrOutOfOrder       error = &classError{msg: "piecewise: segment pushed out of order", class: ErrConstruction}
	ErrEmptyInterval    error = &classError{msg: "piecewise: segment domain is empty", class: ErrConstruction}
	ErrCapacityExceeded error = &classError{msg: "piecewise: inline capacity exceeded", class: ErrConstruction}
	ErrBuilderFinished  error = &classError{msg: "piecewise: builder already finished", class: ErrConstruction}
)

// Operation errors.
var (
	ErrUnboundedDomain   error = &classError{msg: "piecewise: segment domain is unbounded", class: ErrOperation}
	ErrValueOpFailed     error = &classError{msg: "piecewise: value operator failed", class: ErrOperation}
	ErrInvalidResampling error = &classError{msg: "piecewise: invalid resampling policy", class: ErrOperation}
)

// ErrInvalidOption is returned when a functional option receives an invalid argument.
var ErrInvalidOption = errors.New("piecewise: invalid option")

// classError is a sentinel that also matches its class through Unwrap.
type classError struct {
	msg   string
	class error
}

func (e *classError) Error() string {
	return e.msg
}

func (e *classError) Unwrap() error {
	return e.class
}

// ValueOpError wraps a failure returned by a caller-supplied value operator.
//
// Both errors.Is(err, ErrValueOpFailed) and errors.Is(err, inner) hold for a
// ValueOpError carrying inner.
type ValueOpError struct {
	// Index is the position of the output segment being produced when the operator failed.
	Index int
	// Err is the error returned by the operator.
	Err error
}

// NewValueOpError wraps err as a ValueOpError at the given output position.
func NewValueOpError(index int, err error) *ValueOpError {
	return &ValueOpError{Index: index, Err: err}
}

func (e *ValueOpError) Error() string {
	if e.Err == nil {
		return ErrValueOpFailed.Error()
	}

	return ErrValueOpFailed.Error() + ": " + e.Err.Error()
}

// Unwrap exposes both the ErrValueOpFailed sentinel and the operator's error.
func (e *ValueOpError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValueOpFailed}
	}

	return []error{ErrValueOpFailed, e.Err}
}
