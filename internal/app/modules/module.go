// Package modules contains domain-oriented dependency units for the
// composition root. Each module owns the construction of its services and
// contributes them to the shared HTTP server deps and River worker registry.
package modules

import (
	"context"

	"github.com/riverqueue/river"

	"formgate.io/formgate/internal/api/handlers"
)

// Module represents a domain-specific dependency unit in the composition root.
type Module interface {
	// Name returns a stable module identifier for logging/debugging.
	Name() string

	// ContributeServerDeps injects module-owned dependencies into the HTTP server deps.
	ContributeServerDeps(*handlers.ServerDeps)

	// RegisterWorkers registers module workers into a shared River worker registry.
	RegisterWorkers(*river.Workers)

	// Shutdown performs module-local graceful cleanup.
	Shutdown(context.Context) error
}
