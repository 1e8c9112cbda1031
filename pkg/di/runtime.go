// Package di wires the CLI's collaborators together with samber/do.
package di

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency container handed to command handlers.
type Injector = do.Injector

// Module registers services with an injector.
type Module func(Injector) error

// Runtime builds a fresh injector from its modules for every invocation.
type Runtime struct {
	modules []Module
}

// New creates a Runtime. Nil modules are skipped.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke creates an injector, applies the runtime's modules followed by
// extraModules, and calls handler. The injector is shut down afterwards.
func (r *Runtime) Invoke(handler func(Injector) error, extraModules ...Module) error {
	injector := do.New()

	defer func() {
		_ = injector.Shutdown()
	}()

	modules := make([]Module, 0, len(r.modules)+len(extraModules))
	modules = append(modules, r.modules...)
	modules = append(modules, extraModules...)

	for _, module := range modules {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	return handler(injector)
}

// RunEWithRuntime adapts a handler that needs an injector to cobra's RunE.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(cmd *cobra.Command, injector Injector) error,
	extraModules ...Module,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, injector)
		}, extraModules...)
	}
}
