// Package matrix provides the dense, row-major float64 grid used to hold
// transportation costs and allocations.
//
// The matrix package provides:
//
//   - Dense: a cache-friendly r×c buffer with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - Construction from [][]float64 (NewDenseFromRows) with rectangularity and
//     finite-value checks, and export back to [][]float64 (ToRows) as a deep copy.
//   - Row/column reductions (RowSums, ColSums) used for conservation checks.
//   - Validators (ValidateNonNegative, ValidateVecLen, ...) returning wrapped
//     sentinels so callers can match with errors.Is.
//
// Every traversal is row-major and deterministic; nothing here keeps global
// state, so distinct matrices may be used from different goroutines freely.
// A single Dense is not safe for concurrent writes.
package matrix
