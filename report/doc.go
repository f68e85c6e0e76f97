// Package report renders a solved transportation problem.
//
// Formats:
//   - "table": bordered, coloured table for terminals. Allocated cells are
//     highlighted and read "qty (@ cost)"; empty cells read "-".
//   - "text":  the same table with ASCII borders and no colour.
//   - "yaml", "json": a Document for scripts and other tools.
//
// The total cost is printed from the exact decimal sum, so 0.1+0.2 reads 0.3.
// Unbalanced problems are rendered with a warning; they are not errors.
package report
