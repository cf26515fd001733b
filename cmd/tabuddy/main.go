// Package main is the entry point of TA Buddy, a command-line address book that
// helps teaching assistants keep track of modules, students and tasks.
//
// Layers follow the usual DDD split:
// - Domain: modules, students, tasks and the address book aggregate
// - Application: commands, the model and the logic manager
// - Infrastructure: JSON, SQLite, PostgreSQL and Redis storage
// - Interface: the command parser and the interactive terminal session
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tabuddy/tabuddy/internal/domain/shared"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, shared.MessageOf(err))
		stop()
		os.Exit(1)
	}
}
