// Package tpsolve finds an initial shipping plan for the transportation
// problem: m sources with a supply, n destinations with a demand and a
// per-unit cost for every source→destination route.
//
// 🚀 What is in the box?
//
//	nwcm/        North-West Corner Method solver and balance check
//	matrix/      row-major Dense grid for costs and allocations
//	problem/     problem files, inline parsing, validation
//	report/      styled or plain tables, YAML/JSON result documents
//	tui/         three-step interactive wizard
//	cmd/tpsolve  command-line front-end
//
// ✨ Guarantees of the solver
//
//   - Pure and deterministic: inputs are copied, never written; no globals.
//   - Unbalanced problems are solved anyway; only the shorter side is used up.
//   - The total cost is also kept as an exact decimal, so 0.1·1 + 0.2·1 is 0.3.
//
// Quick ASCII example:
//
//	        D1   D2   supply
//	   S1 [ 4    6 ]   10
//	   S2 [ 3    2 ]   15
//	demand  12   13
//
//	NWCM fills S1→D1 = 10, S2→D1 = 2, S2→D2 = 13; total cost 72.
//
//	go install github.com/katalvlaran/tpsolve/cmd/tpsolve@latest
package tpsolve
