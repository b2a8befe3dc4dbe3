package model

import "errors"

// ErrEmptyHint indicates that the hint text is empty after trimming.
var ErrEmptyHint = errors.New("hint text cannot be empty")
