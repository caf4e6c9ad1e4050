// Command server runs the wikisynset HTTP service. It exposes term
// resolution over REST along with liveness and readiness probes.
//
// Configuration is read from CONFIG_PATH (YAML) and the environment.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wikisynset/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
