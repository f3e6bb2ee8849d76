// Command server runs the API: entry ingestion and lifecycle, share links,
// the public listing, media streaming, and the in-process purge sweeper.
package main

import (
	"context"
	"log"

	"github.com/fieldpost/backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application failed: %v", err)
	}
}
