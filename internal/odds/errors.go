package odds

import "errors"

var (
	ErrNegative                = errors.New("parameters must be non-negative")
	ErrNonInteger              = errors.New("parameters must be integers")
	ErrOutOfRange              = errors.New("parameters must fit in 32 bits")
	ErrTargetsExceedPopulation = errors.New("success states cannot exceed population size")
	ErrSampleExceedsPopulation = errors.New("sample size cannot exceed population size")
	ErrTargetsExceedDeck       = errors.New("target cards cannot exceed deck size")
	ErrHandExceedsDeck         = errors.New("hand size cannot exceed deck size")
	ErrExchangeRange           = errors.New("exchange count must be between 0 and 4")
	ErrNegativeTurn            = errors.New("turn must be non-negative")
	ErrUnknownMode             = errors.New("unknown mulligan mode")
)

// DomainError reports a call that violates the engine's input contract.
// Err is always one of the sentinels above, so errors.Is works on it.
type DomainError struct {
	Op  string
	Err error
}

func (e *DomainError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *DomainError) Unwrap() error { return e.Err }

func domainErr(op string, err error) error {
	return &DomainError{Op: op, Err: err}
}

// IsDomainError reports whether err (or anything it wraps) is a DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
