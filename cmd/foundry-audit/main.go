// Foundry-audit serves the HugemouthSEO free SEO audit API: POST a URL
// to /audit and get back a scored report on the page's meta description
// and H1 structure.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/foundryos/foundry/internal/seoaudit"
	"github.com/foundryos/foundry/internal/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		address     = flag.String("address", ":8000", "TCP listen address")
		showVersion = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("foundry-audit %s\n", version.String())
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	server := seoaudit.NewServer(seoaudit.ServerConfig{
		Address: *address,
		Logger:  logger,
	})
	return server.Serve(ctx)
}
