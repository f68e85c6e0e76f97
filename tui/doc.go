// Package tui is the interactive front-end of tpsolve: a three-step
// bubbletea wizard.
//
//  1. Dimensions: number of sources (rows) and destinations (columns).
//  2. Data: cost grid, supply column and demand row, all starting at 0,
//     with a live supply/demand total. Entries that are not numbers count as 0.
//  3. Result: total cost and the allocation table. An unbalanced problem is
//     solved anyway and shown with a warning.
//
// Esc goes back one step, "n" on the result screen starts over.
//
// The model is driven only by the bubbletea event loop and is not safe for
// use from several goroutines.
package tui
