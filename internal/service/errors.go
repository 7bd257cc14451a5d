package service

import "errors"

var (
	// ErrInvalidCountry means the requested country has no pricing rows.
	ErrInvalidCountry = errors.New("invalid country")
	// ErrProductNotFound means no product is priced for the requested id and country.
	ErrProductNotFound = errors.New("product not found")
)
