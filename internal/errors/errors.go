// Package errors provides error handling for mcpc.
//
// This package re-exports github.com/cockroachdb/errors so that every
// package wraps errors the same way and can attach user-facing hints:
//
//	if err := fs.Mkdir(path, 0755); err != nil {
//	    return errors.Wrapf(err, "failed to create project directory: %s", path)
//	}
//
//	return errors.WithHint(ErrTargetExists, "choose a different project name")
//
// The CLI prints hints below the error message on stderr.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	FlattenHints  = crdb.FlattenHints
	GetAllDetails = crdb.GetAllDetails
)

// Hints returns the de-duplicated hints attached anywhere in err's chain.
func Hints(err error) []string {
	if err == nil {
		return nil
	}
	return crdb.GetAllHints(err)
}
