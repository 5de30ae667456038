package ports

import "context"

// CompileRequest describes one resolver invocation.
type CompileRequest struct {
	// Tool is the resolver argv prefix from the project layout. Empty
	// means the adapter's default tool.
	Tool []string

	// Manifest is the path of the dependency manifest, relative to the
	// working directory of the run.
	Manifest string

	// Extras are the optional dependency groups selected for this pass.
	Extras []string

	// Constraints is an optional lockfile path whose pins cap the
	// resolution. Empty means unconstrained.
	Constraints string

	// Output is the lockfile path written by the resolver.
	Output string

	// Upgrade requests that all pins be moved to their latest
	// satisfiable versions instead of being kept where possible.
	Upgrade bool
}

// LockfileCompiler defines the interface for the dependency resolver tool.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type LockfileCompiler interface {
	// Compile resolves the manifest into a pinned lockfile at req.Output.
	// The previous output file is fully overwritten. It returns an error
	// wrapping domain.ErrResolutionFailed if the resolver reports an
	// unsatisfiable or erroring dependency graph.
	Compile(ctx context.Context, req CompileRequest) error
}
