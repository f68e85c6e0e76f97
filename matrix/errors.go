// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every public method returns one of these (possibly wrapped with
// "Dense.<Method>(i,j): %w" context) and tests match them via errors.Is.
// No method panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines are easy to grep.
// Return the bare sentinel when there is no useful context; otherwise wrap with
// fmt.Errorf("ctx: %w", ErrX) at the detection site.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> raggedness -> index -> NaN/Inf.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from the matrix side it is checked against.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRagged signals that a [][]float64 source has rows of different lengths.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
