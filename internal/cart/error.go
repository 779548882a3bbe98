package cart

import "errors"

var (
	// -- Persistence --
	ErrFailedSaveCart = errors.New("failed to save cart")
	ErrFailedLoadCart = errors.New("failed to load saved cart")
	ErrCorruptCart    = errors.New("saved cart is not valid JSON")
)
