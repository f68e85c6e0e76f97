// Command tpsolve finds an initial feasible shipping plan for a
// transportation problem with the north-west corner method.
//
// Usage:
//
//	tpsolve                      # interactive wizard
//	tpsolve solve --file p.yaml  # solve a problem file
//	tpsolve solve --costs "4,6;3,2" --supply 10,15 --demand 12,13
//	tpsolve balance --supply 10,15 --demand 12,13
//	tpsolve template --sources 3 --destinations 4 --out p.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(newApp())
	if err := root.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
