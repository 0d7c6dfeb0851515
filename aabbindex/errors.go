package aabbindex

import "errors"

// ErrEmptyIndex indicates Build was called with no items added to the
// Builder.
var ErrEmptyIndex = errors.New("aabbindex: cannot build index from zero items")
