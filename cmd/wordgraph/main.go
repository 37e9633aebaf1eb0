// SPDX-License-Identifier: MIT
// File: main.go
// Role: Process entry point and signal handling.

// Command wordgraph builds a word-adjacency graph from a text file and
// answers bridge-word, shortest-path, random-walk and text-generation
// queries, either one-shot or in an interactive session.
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

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
