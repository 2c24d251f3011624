package address

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidSlug           = errors.New("invalid slug")
	ErrInvalidCountryID      = errors.New("invalid country id")
	ErrInvalidCityID         = errors.New("invalid city id")
	ErrInvalidAddressID      = errors.New("invalid address id")
	ErrInvalidVia            = errors.New("invalid via")
	ErrInvalidNumber         = errors.New("invalid number")
	ErrInvalidDoorOrFloor    = errors.New("invalid door or floor")
	ErrInvalidPostalCode     = errors.New("invalid postal code")

	ErrCountryNotFound = errors.New("country not found")
	ErrCityNotFound    = errors.New("city not found")
	ErrAddressNotFound = errors.New("address not found")
	ErrConflict        = errors.New("resource already exists")
)
