// Package domain defines domain-level errors for the stocks feature.
package domain

import "errors"

// Domain errors for stock lookup operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrStockNotFound indicates that no stock with the given ticker exists in the catalog.
	ErrStockNotFound = errors.New("stock not found")
)
