package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates that an account's available balance cannot
// cover a requested debit. Operations rejected with this error have no
// partial effect.
var ErrInsufficientFunds = errors.New("insufficient available balance")

// ErrRateUnavailable indicates that no direct or cross rate path exists
// between two currencies.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// ErrExternal indicates a failure in an external collaborator (e.g. the
// official rate feed). Previously stored state remains authoritative.
var ErrExternal = errors.New("external dependency failure")
