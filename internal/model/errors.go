package model

import "errors"

// ErrValidation marks rejected input: non-positive amounts, empty required
// titles, unknown enum labels. Constructors wrap it with detail.
var ErrValidation = errors.New("validation")
