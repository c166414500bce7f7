package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyBank is returned when the prime bank has no entries.
var ErrEmptyBank = errors.New("prime bank is empty")

// ErrBankNotAscending indicates a bank entry that is not strictly greater
// than its predecessor.
type ErrBankNotAscending struct {
	Index int
}

func (e *ErrBankNotAscending) Error() string {
	return fmt.Sprintf("prime bank not strictly ascending at index %d", e.Index)
}

// ErrPrimeOutOfRange indicates a bank entry outside [2, MaxBankPrime].
type ErrPrimeOutOfRange struct {
	Prime uint32
}

func (e *ErrPrimeOutOfRange) Error() string {
	return fmt.Sprintf("bank prime %d out of range [2, %d]", e.Prime, MaxBankPrime)
}

// ErrInvalidGroupSize indicates a group size that is not a positive multiple
// of the lane width.
type ErrInvalidGroupSize struct {
	Size int
}

func (e *ErrInvalidGroupSize) Error() string {
	return fmt.Sprintf("group size %d is not a positive multiple of the lane width", e.Size)
}

// ErrInvalidThreshold indicates a negative scalar threshold.
type ErrInvalidThreshold struct {
	Threshold int
}

func (e *ErrInvalidThreshold) Error() string {
	return fmt.Sprintf("scalar threshold %d is negative", e.Threshold)
}
