// Command catalog runs the product and store catalog service.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

const serviceName = "catalog"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}
