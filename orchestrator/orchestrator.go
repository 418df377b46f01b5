// Package orchestrator drives the five container operations: validate
// inputs, resolve parameters, derive output paths, run the engine, and
// report a uniform result. No partial outcome is ever reported as
// success, and every opened engine session is closed on every path.
package orchestrator

import (
	"context"
	"path/filepath"

	"avtool/engine"
	"avtool/models"
	"avtool/quality"
)

// Console receives an operation's informational output. The CLI
// supplies a rendering implementation; a nil console discards output.
type Console interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Successf(format string, args ...any)
}

type nopConsole struct{}

func (nopConsole) Infof(string, ...any)    {}
func (nopConsole) Warnf(string, ...any)    {}
func (nopConsole) Successf(string, ...any) {}

// Orchestrator runs operations against a media engine.
type Orchestrator struct {
	engine   engine.Engine
	resolver *quality.Resolver
	console  Console
}

// New creates an Orchestrator. console may be nil.
func New(eng engine.Engine, resolver *quality.Resolver, console Console) *Orchestrator {
	if console == nil {
		console = nopConsole{}
	}
	return &Orchestrator{
		engine:   eng,
		resolver: resolver,
		console:  console,
	}
}

// warnExisting emits one warning per output target that already exists
// and will be overwritten.
func (o *Orchestrator) warnExisting(paths ...string) {
	plan := models.NewOutputPlan(paths...)
	for _, target := range plan.Targets {
		if target.Existed {
			o.console.Warnf("Output file already exists and will be overwritten: %s", target.Path)
		}
	}
}

// samePath reports whether two paths name the same file once made
// absolute. Symlinks are not chased.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}

// encodePart renders one part range from a fresh session of the
// source. Opening anew per part keeps the cut exact regardless of what
// earlier parts did to the engine's read position.
func (o *Orchestrator) encodePart(ctx context.Context, inputPath, outputPath string, rng models.PartRange, opts engine.EncodeOptions) error {
	session, err := o.engine.Open(ctx, inputPath)
	if err != nil {
		return err
	}
	defer session.Close()

	part, err := session.Trim(rng.Start, rng.End)
	if err != nil {
		return err
	}
	return part.Encode(ctx, outputPath, opts)
}
