// Package errs is a thin seam over cockroachdb/errors so the rest of
// the codebase gets stack traces and sentinel marking without binding
// to the library in every import block.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// New builds an error carrying the caller's stack.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap prepends msg as context. Nil stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark ties err to a sentinel so errors.Is(err, sentinel) holds while
// the original cause remains visible in %+v output. A nil err yields
// the bare sentinel.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}
