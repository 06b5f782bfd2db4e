package domain

import "errors"

var (
	// ErrInvalidLux indicates lux value is invalid
	ErrInvalidLux = errors.New("lux value must be finite and non-negative")

	// ErrInvalidDuration indicates a negative analysis window
	ErrInvalidDuration = errors.New("analysis duration cannot be negative")

	// ErrRecordNotFound indicates requested record doesn't exist
	ErrRecordNotFound = errors.New("record not found")

	// ErrSensorUnavailable indicates sensor cannot be read
	ErrSensorUnavailable = errors.New("sensor unavailable")

	// ErrSessionBusy indicates an analysis is already sampling or searching
	ErrSessionBusy = errors.New("an analysis session is already in progress")

	// ErrControllerClosed indicates the controller no longer listens to the sensor feed
	ErrControllerClosed = errors.New("analysis controller closed")

	// ErrDuplicateKeyword indicates two catalog entries share a keyword
	ErrDuplicateKeyword = errors.New("duplicate catalog keyword")

	// ErrInvalidCatalog indicates a malformed catalog entry
	ErrInvalidCatalog = errors.New("invalid catalog entry")
)
