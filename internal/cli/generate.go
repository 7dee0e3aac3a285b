package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/lanegen/internal/manifest"
	"github.com/roach88/lanegen/internal/suite"
	"github.com/roach88/lanegen/internal/wast"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	OutDir   string
	Database string
	Suites   []string
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render conformance fixtures for the built-in suites",
		Long: `Render conformance fixtures to an output directory.

Each suite produces one fixture file named after the suite. When a
manifest database is given, the run and the digest of every emitted
fixture are recorded for later verification.

Example:
  lanegen generate --out ./fixtures
  lanegen generate --out ./fixtures --db ./manifest.db --suite f32x4_arith`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.OutDir, "out", "fixtures", "output directory for fixture files")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to manifest SQLite database (optional)")
	cmd.Flags().StringSliceVar(&opts.Suites, "suite", nil, "only generate the named suites (repeatable)")

	return cmd
}

// generatedFixture is the per-suite summary reported to the user.
type generatedFixture struct {
	Suite  string `json:"suite"`
	Path   string `json:"path"`
	Cases  int    `json:"cases"`
	SHA256 string `json:"sha256"`
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions) error {
	configureLogging(opts.Verbose)
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	specs, err := selectSuites(opts.Suites)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load suites", err)
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return WrapExitError(ExitCommandError, "failed to create output directory", err)
	}

	var store *manifest.Store
	var run *manifest.Run
	if opts.Database != "" {
		store, err = manifest.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open manifest database", err)
		}
		defer store.Close()

		run, err = store.BeginRun(cmd.Context(), Version)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to begin run", err)
		}
		slog.Info("manifest run started", "run_id", run.ID)
	}

	results := make([]generatedFixture, 0, len(specs))
	for _, sp := range specs {
		f, err := wast.Render(sp)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to render suite %s", sp.Name), err)
		}

		path := filepath.Join(opts.OutDir, f.Name+".wast")
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to write %s", path), err)
		}
		slog.Info("fixture written", "suite", sp.Name, "path", path, "cases", f.Cases)

		if store != nil {
			if err := store.RecordFixture(cmd.Context(), run.ID, sp, path, f.Content, f.Cases); err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("failed to record fixture %s", sp.Name), err)
			}
		}

		results = append(results, generatedFixture{
			Suite:  sp.Name,
			Path:   path,
			Cases:  f.Cases,
			SHA256: manifest.HashFixture(f.Content),
		})
	}

	if opts.Format == "json" {
		return formatter.Success(results)
	}
	for _, r := range results {
		fmt.Fprintf(formatter.Writer, "wrote %s (%d cases)\n", r.Path, r.Cases)
	}
	return nil
}

// selectSuites loads the built-in suites, optionally filtered by name.
func selectSuites(filter []string) ([]suite.Spec, error) {
	specs, err := suite.Builtin()
	if err != nil {
		return nil, err
	}
	if len(filter) == 0 {
		return specs, nil
	}

	byName := make(map[string]suite.Spec, len(specs))
	for _, sp := range specs {
		byName[sp.Name] = sp
	}

	selected := make([]suite.Spec, 0, len(filter))
	for _, name := range filter {
		sp, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown suite %q", name)
		}
		selected = append(selected, sp)
	}
	return selected, nil
}

// configureLogging installs the default slog handler on stderr.
func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
