// Command server runs the trust-token and conversation log subsystem: the
// database-backed stores, the file-backed conversation logs, and the
// background expiry sweeper.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"

	"github.com/classline/backend/internal/app"
)

func main() {
	// No serve hook: this binary hosts the stores and the sweeper; the
	// transport layer is deployed by the surrounding platform via app.Run
	// with its own ServeFunc.
	if err := app.Run(context.Background(), nil); err != nil {
		log.Fatalf("application failed: %v", err)
	}
}
