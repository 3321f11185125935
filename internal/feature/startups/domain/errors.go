// Package domain defines domain-level errors for the startups feature.
package domain

import "errors"

var (
	// ErrStartupNotFound indicates that no startup with the given id exists in the catalog.
	ErrStartupNotFound = errors.New("startup not found")
)
