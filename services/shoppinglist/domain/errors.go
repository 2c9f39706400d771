package domain

import "errors"

// Sentinel errors for the shopping list domain. Use errors.Is() to check these.
var (
	// ErrListNotFound indicates the list does not exist or is not owned by the caller.
	// Ownership misses and true misses are indistinguishable on purpose.
	ErrListNotFound = errors.New("shopping list not found")

	// ErrItemNotFound indicates the item does not exist under the caller's
	// (owner, list) scope.
	ErrItemNotFound = errors.New("shopping list item not found")

	// ErrInvalidName indicates a list or item name violates domain constraints.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidQuantity indicates a non-positive item quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
)
