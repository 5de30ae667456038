// Package piptools adapts the pip-compile and pip-sync command line tools to
// the compiler and syncer ports. The adapters only build argv; execution and
// output streaming are delegated to the CommandRunner.
package piptools

import (
	"context"
	"errors"
	"slices"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Compiler implements ports.LockfileCompiler using pip-compile.
type Compiler struct {
	runner ports.CommandRunner
}

// NewCompiler creates a Compiler executing resolver invocations through the runner.
func NewCompiler(runner ports.CommandRunner) *Compiler {
	return &Compiler{runner: runner}
}

// Compile resolves req.Manifest into a pinned lockfile at req.Output.
// Extras select optional dependency groups, a constraints file caps pins
// from an earlier pass, and Upgrade moves all pins to their latest
// satisfiable versions. The resolver fully overwrites the output file.
func (c *Compiler) Compile(ctx context.Context, req ports.CompileRequest) error {
	tool := req.Tool
	if len(tool) == 0 {
		tool = domain.DefaultCompileTool()
	}

	argv := slices.Clone(tool)
	if req.Upgrade {
		argv = append(argv, "--upgrade")
	}
	for _, extra := range req.Extras {
		argv = append(argv, "--extra", extra)
	}
	if req.Constraints != "" {
		argv = append(argv, "--constraint", req.Constraints)
	}
	argv = append(argv, "--output-file", req.Output, req.Manifest)

	if err := c.runner.Run(ctx, argv, ""); err != nil {
		resErr := zerr.With(errors.Join(domain.ErrResolutionFailed, err), "manifest", req.Manifest)
		return zerr.With(resErr, "output", req.Output)
	}

	return nil
}

var _ ports.LockfileCompiler = (*Compiler)(nil)
