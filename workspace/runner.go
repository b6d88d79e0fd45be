// Package workspace applies the import rewrite to files and directory trees.
package workspace

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/hannajonsd/granular-imports/parser"
	"github.com/hannajonsd/granular-imports/printer"
	"github.com/hannajonsd/granular-imports/transform"
)

// Options configures a Runner
type Options struct {
	Transform        transform.Options
	Extensions       []string
	RespectGitignore bool
	Write            bool
	Diff             bool
}

// Runner rewrites source files one at a time
type Runner struct {
	opts   Options
	logger *slog.Logger
}

// New creates a runner. A nil logger discards output.
func New(opts Options, logger *slog.Logger) *Runner {
	if len(opts.Extensions) == 0 {
		opts.Extensions = parser.SupportedExtensions
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{opts: opts, logger: logger}
}

// FindSourceFiles expands paths into the sorted, de-duplicated list of source
// files they name. Directories are searched recursively.
func (r *Runner) FindSourceFiles(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		found := []string{path}
		if info.IsDir() {
			found, err = findSourceFiles(path, r.opts.Extensions, r.opts.RespectGitignore)
			if err != nil {
				return nil, fmt.Errorf("failed to find source files in %s: %w", path, err)
			}
		}

		for _, f := range found {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// Run rewrites every source file under paths. Per-file failures are recorded
// in the summary and do not stop the run.
func (r *Runner) Run(ctx context.Context, paths []string) (Summary, error) {
	files, err := r.FindSourceFiles(paths)
	if err != nil {
		return Summary{}, err
	}
	r.logger.Debug("found source files", "count", len(files))

	var summary Summary
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Add(r.ProcessFile(ctx, file))
	}
	return summary, nil
}

// ProcessFile rewrites a single file
func (r *Runner) ProcessFile(ctx context.Context, path string) FileResult {
	result := FileResult{Path: path}

	source, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("failed to read file %s: %w", path, err)
		r.logger.Warn("skipping file", "path", path, "error", result.Err)
		return result
	}

	result = r.Rewrite(ctx, path, source)
	if result.Err != nil {
		r.logger.Warn("skipping file", "path", path, "error", result.Err)
		return result
	}

	if r.opts.Write && result.Changed {
		if err := writePreservingMode(path, result.Output); err != nil {
			result.Err = err
			r.logger.Warn("failed to write file", "path", path, "error", err)
			return result
		}
		result.Written = true
	}
	return result
}

// Rewrite transforms source named path without touching the filesystem
func (r *Runner) Rewrite(ctx context.Context, path string, source []byte) FileResult {
	result := FileResult{Path: path}

	fileParser, err := parser.CreateParser(path)
	if err != nil {
		result.Err = err
		return result
	}
	defer fileParser.Close()

	parsed, err := fileParser.Parse(ctx, path, source)
	if err != nil {
		result.Err = err
		return result
	}

	transformed, err := transform.Transform(parsed.Arena, transform.NewUnit(path), r.opts.Transform)
	if err != nil {
		result.Err = err
		return result
	}

	result.Output = printer.Print(parsed.Arena)
	result.Changed = !bytes.Equal(source, result.Output)
	result.Imports = transformed.Imports
	result.Normalized = transformed.Normalized

	for _, imp := range transformed.Imports {
		r.logger.Debug("rewrote import",
			"path", path,
			"namespace", imp.Namespace,
			"generated", imp.Generated,
			"absorbed", imp.Absorbed,
			"usage", imp.Usage,
		)
	}

	if r.opts.Diff && result.Changed {
		result.Patch = UnifiedDiff(path, source, result.Output)
	}
	return result
}

func writePreservingMode(path string, content []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
