// Command server runs the kebab API over HTTP.
//
// Configuration comes from the YAML file named by CONFIG_PATH (default
// ./config.yaml) and the environment. SIGINT and SIGTERM trigger a graceful
// shutdown.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/lenasun/kebab-api/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
