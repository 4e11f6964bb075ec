package shop

import (
	"errors"
	"fmt"
)

// Field names as they appear in validation messages
const (
	FieldName      = "Name"
	FieldAddress   = "Address"
	FieldLatitude  = "Latitude"
	FieldLongitude = "Longitude"
)

var (
	// ErrShopNotFound is returned by the repository for an absent id
	ErrShopNotFound = errors.New("shop not found")
	// ErrEmptyRegistry is returned when a nearest lookup has nothing to scan
	ErrEmptyRegistry = errors.New("no shops in registry")
	// ErrInvalidID covers both unparsable and unknown ids
	ErrInvalidID = errors.New("invalid/missing id")
	// ErrNotImplemented is returned when no geocoder is configured
	ErrNotImplemented = errors.New("not implemented")
	// ErrAddressNotFound is returned by a geocoder with no match
	ErrAddressNotFound = errors.New("address not found")
)

// ValidationError names the first field that failed validation
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value given for %s", e.Field)
}

// NearestError reports a failed nearest lookup for an address
type NearestError struct {
	Address string
	Err     error
}

func (e *NearestError) Error() string {
	return fmt.Sprintf("could not get nearest coffee shop for location: %s", e.Address)
}

func (e *NearestError) Unwrap() error {
	return e.Err
}
