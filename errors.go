package sievego

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sievego/internal/engine"
)

var (
	// ErrEmptyPrimeBank is returned when a configured prime bank has no entries.
	ErrEmptyPrimeBank = errors.New("prime bank is empty")
)

// ErrBankNotAscending indicates a prime bank that is not strictly ascending.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrBankNotAscending struct {
	Index int
	cause error
}

func (e *ErrBankNotAscending) Error() string {
	return fmt.Sprintf("prime bank not strictly ascending at index %d", e.Index)
}

func (e *ErrBankNotAscending) Unwrap() error { return e.cause }

// ErrPrimeOutOfRange indicates a bank entry outside the supported range.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrPrimeOutOfRange struct {
	Prime uint32
	cause error
}

func (e *ErrPrimeOutOfRange) Error() string {
	return fmt.Sprintf("bank prime out of range: %d", e.Prime)
}

func (e *ErrPrimeOutOfRange) Unwrap() error { return e.cause }

// ErrInvalidGroupSize indicates an unsupported vectorized group size.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidGroupSize struct {
	Size  int
	cause error
}

func (e *ErrInvalidGroupSize) Error() string {
	return fmt.Sprintf("invalid group size: %d", e.Size)
}

func (e *ErrInvalidGroupSize) Unwrap() error { return e.cause }

// ErrInvalidThreshold indicates a negative scalar threshold.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidThreshold struct {
	Threshold int
	cause     error
}

func (e *ErrInvalidThreshold) Error() string {
	return fmt.Sprintf("invalid scalar threshold: %d", e.Threshold)
}

func (e *ErrInvalidThreshold) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, engine.ErrEmptyBank) {
		return fmt.Errorf("%w: %w", ErrEmptyPrimeBank, err)
	}
	var na *engine.ErrBankNotAscending
	if errors.As(err, &na) {
		return &ErrBankNotAscending{Index: na.Index, cause: err}
	}
	var po *engine.ErrPrimeOutOfRange
	if errors.As(err, &po) {
		return &ErrPrimeOutOfRange{Prime: po.Prime, cause: err}
	}
	var gs *engine.ErrInvalidGroupSize
	if errors.As(err, &gs) {
		return &ErrInvalidGroupSize{Size: gs.Size, cause: err}
	}
	var th *engine.ErrInvalidThreshold
	if errors.As(err, &th) {
		return &ErrInvalidThreshold{Threshold: th.Threshold, cause: err}
	}

	return err
}
