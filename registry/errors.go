package registry

import (
	"errors"
)

// common errors
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrAccountNotFound      = errors.New("account not found")
	ErrRPCQueryError        = errors.New("rpc query error")
	ErrMalformedAccountData = errors.New("malformed account data")
)

// IsClientError return true if the error is caused by the caller's input
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFoundError return true if the queried object does not exist
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrAccountNotFound)
}
