package models

import "errors"

// ErrInvalidPriority indicates a priority outside of low, medium and high
var ErrInvalidPriority = errors.New("invalid priority")
