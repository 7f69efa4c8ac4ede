// Package common defines shared sentinel errors and small helpers used across
// QuickChat layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Record-specific errors.
	ErrorInvalidStatus = errors.New("invalid status")

	// Session errors.
	ErrorNotLoggedIn = errors.New("not logged in")
)
