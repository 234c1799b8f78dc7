package bst

import (
	"github.com/pkg/errors"
)

var (
	// ErrDuplicateKey is returned by Insert when an equal key is already
	// present.  The tree is left unchanged.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned by Search and Delete when no equal key is
	// present.  The tree is left unchanged.
	ErrNotFound = errors.New("key not found")
)
