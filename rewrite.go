package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hannajonsd/granular-imports/workspace"
)

// ErrFilesFailed is returned when at least one file could not be rewritten.
var ErrFilesFailed = errors.New("some files failed")

type rewriteFlags struct {
	write         bool
	diff          bool
	extract       string
	declaration   string
	source        string
	stdinFilename string
}

func newRewriteCommand() *cobra.Command {
	flags := &rewriteFlags{}

	cmd := &cobra.Command{
		Use:   "rewrite [paths...]",
		Short: "Rewrite react imports into granular bindings",
		Long: `Rewrite every qualifying import in the given files or directories.

Without --write the rewritten source is printed. With --diff a patch is
printed instead. Use "-" to read a single file from stdin.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRewrite(cmd, flags, args)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write results back to the files")
	cmd.Flags().BoolVarP(&flags.diff, "diff", "d", false, "print a patch instead of the rewritten source")
	addTransformFlags(cmd, &flags.extract, &flags.declaration, &flags.source)
	cmd.Flags().StringVar(&flags.stdinFilename, "stdin-filename", "stdin.jsx", "file name used for stdin input")

	return cmd
}

// addTransformFlags registers the flags that override the transform section.
func addTransformFlags(cmd *cobra.Command, extract, declaration, source *string) {
	cmd.Flags().StringVar(extract, "extract", "", `extraction policy: "all" or a minimum use count`)
	cmd.Flags().StringVar(declaration, "declaration", "", "destructuring keyword: const, let or var")
	cmd.Flags().StringVar(source, "source", "", "module whose imports are rewritten")
}

// newRunner builds a workspace runner from config and command-line overrides.
func newRunner(cmd *cobra.Command, extract, declaration, source string, write, diff bool) (*workspace.Runner, error) {
	cfg, logger, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	if extract != "" {
		cfg.Transform.Extract = extract
	}
	if declaration != "" {
		cfg.Transform.Declaration = declaration
	}
	if source != "" {
		cfg.Transform.Source = source
	}

	opts, err := cfg.TransformOptions()
	if err != nil {
		return nil, err
	}

	return workspace.New(workspace.Options{
		Transform:        opts,
		Extensions:       cfg.Files.Extensions,
		RespectGitignore: cfg.Files.RespectGitignore,
		Write:            write,
		Diff:             diff,
	}, logger), nil
}

func runRewrite(cmd *cobra.Command, flags *rewriteFlags, args []string) error {
	if len(args) == 1 && args[0] == "-" {
		return rewriteStdin(cmd, flags)
	}
	if len(args) == 0 {
		args = []string{"."}
	}

	runner, err := newRunner(cmd, flags.extract, flags.declaration, flags.source, flags.write, flags.diff)
	if err != nil {
		return err
	}

	summary, err := runner.Run(cmd.Context(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !flags.write {
		printResults(out, summary, len(summary.Results) > 1, flags.diff)
	}
	if !quiet {
		workspace.DisplaySummary(cmd.ErrOrStderr(), summary)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, summary.Failed, len(summary.Results))
	}
	return nil
}

func rewriteStdin(cmd *cobra.Command, flags *rewriteFlags) error {
	if flags.write {
		return errors.New("--write cannot be used with stdin")
	}

	runner, err := newRunner(cmd, flags.extract, flags.declaration, flags.source, false, flags.diff)
	if err != nil {
		return err
	}

	source, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	result := runner.Rewrite(cmd.Context(), flags.stdinFilename, source)
	if result.Err != nil {
		return result.Err
	}

	var summary workspace.Summary
	summary.Add(result)
	printResults(cmd.OutOrStdout(), summary, false, flags.diff)
	return nil
}

// printResults writes patches, or rewritten sources, for every file that
// changed. Unchanged files are printed as-is only when there is no header.
func printResults(w io.Writer, summary workspace.Summary, headers, diff bool) {
	for _, r := range summary.Results {
		if r.Err != nil {
			continue
		}
		if diff {
			fmt.Fprint(w, r.Patch)
			continue
		}
		if headers {
			if !r.Changed {
				continue
			}
			fmt.Fprintf(w, "// %s\n", r.Path)
		}
		_, _ = w.Write(r.Output)
	}
}
