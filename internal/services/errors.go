package services

import "errors"

var (
	// ErrNotFound signals an operation against a group with no rows.
	ErrNotFound = errors.New("item not found")
	// ErrConflict signals a rename onto an already-registered type.
	ErrConflict = errors.New("item type already exists")
)
