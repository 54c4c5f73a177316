// Package wire provides dependency injection for the Foundry OS application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/foundryos/foundry/internal/adapters/cli"
	"github.com/foundryos/foundry/internal/adapters/filesystem"
	"github.com/foundryos/foundry/internal/app"
	"github.com/foundryos/foundry/internal/config"
	"github.com/foundryos/foundry/internal/ports/primary"
	"github.com/foundryos/foundry/internal/schema"
)

var (
	hub               config.Hub
	hubConfig         *config.Config
	portfolioService  primary.PortfolioService
	assignmentService primary.AssignmentService
	once              sync.Once
)

// Hub returns the resolved hub directory layout.
func Hub() config.Hub {
	once.Do(initServices)
	return hub
}

// Config returns the loaded hub configuration.
func Config() *config.Config {
	once.Do(initServices)
	return hubConfig
}

// PortfolioService returns the singleton PortfolioService instance.
func PortfolioService() primary.PortfolioService {
	once.Do(initServices)
	return portfolioService
}

// AssignmentService returns the singleton AssignmentService instance.
func AssignmentService() primary.AssignmentService {
	once.Do(initServices)
	return assignmentService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	hub, err = config.ResolveHub()
	if err != nil {
		log.Fatalf("failed to resolve hub directory: %v", err)
	}
	if err := hub.EnsureLayout(); err != nil {
		log.Fatalf("failed to prepare hub directory: %v", err)
	}

	hubConfig, err = config.Load(hub)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// An absent schema file means schema checks are skipped, not an error.
	validator, err := schema.LoadValidator(hub.SchemaPath())
	if err != nil {
		log.Fatalf("failed to load manifest schema: %v", err)
	}

	// Create adapters (secondary ports)
	events := filesystem.NewEventLog(hub)
	manifests := filesystem.NewManifestStore(hub, validator, events)
	assignments := filesystem.NewAssignmentStore(hub)

	// Create services (primary ports implementation)
	portfolioService = app.NewPortfolioService(manifests, validator, hubConfig, events)
	assignmentService = app.NewAssignmentService(manifests, assignments, hubConfig, events)
}

// PortfolioAdapter returns a new PortfolioAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func PortfolioAdapter() *cliadapter.PortfolioAdapter {
	return PortfolioAdapterWithOutput(os.Stdout)
}

// PortfolioAdapterWithOutput returns a new PortfolioAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func PortfolioAdapterWithOutput(out io.Writer) *cliadapter.PortfolioAdapter {
	once.Do(initServices)
	return cliadapter.NewPortfolioAdapter(portfolioService, out)
}

// AssignmentAdapter returns a new AssignmentAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func AssignmentAdapter() *cliadapter.AssignmentAdapter {
	return AssignmentAdapterWithOutput(os.Stdout)
}

// AssignmentAdapterWithOutput returns a new AssignmentAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func AssignmentAdapterWithOutput(out io.Writer) *cliadapter.AssignmentAdapter {
	once.Do(initServices)
	return cliadapter.NewAssignmentAdapter(assignmentService, out)
}
