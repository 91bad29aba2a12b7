package service

import "errors"

// ErrInvalidQuantity is returned when a requested quantity is not a positive integer.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")
