// Package common defines shared sentinel errors used across the service
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("required field is missing")

	// ErrorEditNotAllowed is returned when an edit targets a record whose
	// status has already left "new".
	ErrorEditNotAllowed = errors.New("edit permitted only while status is new")
)
