// Command chirpd runs the chirp daemon in the foreground. Process
// supervision (systemd or similar) is expected to handle restarts; the CLI
// launches `chirp daemon` instead when no supervisor is involved.
package main

import (
	"context"
	"log"

	"chirp/internal/config"
	"chirp/internal/daemonrun"
)

func main() {
	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := daemonrun.Run(context.Background(), cfg, daemonrun.Options{}); err != nil {
		log.Fatalf("run daemon: %v", err)
	}
}
