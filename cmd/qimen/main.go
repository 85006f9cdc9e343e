// Command qimen generates hour charts from the command line.
//
//	qimen chart --at 2024-01-01T12:00 --birth-year 1990
//	qimen batch --from 2024-01-01T00:00 --to 2024-01-02T00:00 --step 2h
//	qimen terms
//	qimen schema
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
