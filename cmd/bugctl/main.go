// Command bugctl lists, exports and seeds bugs in a JSON file store.
//
// Usage:
//
//	bugctl list --data-dir ./data --min-severity 3 -o json
//	bugctl export --data-dir ./data --out bugs.pdf
//	bugctl seed --data-dir ./data
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/heartmarshall/bugtracker/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "bugctl:", err)
		stop()
		os.Exit(1)
	}
}
