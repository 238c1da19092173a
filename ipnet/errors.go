package ipnet

import "errors"

var (
	ErrParse             = errors.New("malformed address")
	ErrInvalidPrefix     = errors.New("prefix length out of range")
	ErrNoncontiguousMask = errors.New("noncontiguous netmask")
	ErrFamilyMismatch    = errors.New("address family mismatch")
	ErrOutOfRange        = errors.New("address index out of range")
)
