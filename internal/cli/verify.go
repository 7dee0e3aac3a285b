package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/lanegen/internal/manifest"
	"github.com/roach88/lanegen/internal/wast"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	OutDir   string
	Database string
	Suites   []string
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check fixtures on disk against a fresh render and the manifest",
		Long: `Re-render each suite and compare against the fixture on disk. When a
manifest database is given, the on-disk digest is also checked against
the latest recorded run.

Exits 1 when any fixture drifted.

Example:
  lanegen verify --out ./fixtures --db ./manifest.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.OutDir, "out", "fixtures", "directory holding fixture files")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to manifest SQLite database (optional)")
	cmd.Flags().StringSliceVar(&opts.Suites, "suite", nil, "only verify the named suites (repeatable)")

	return cmd
}

// verifiedFixture is the per-suite verification outcome.
type verifiedFixture struct {
	Suite  string `json:"suite"`
	Path   string `json:"path"`
	Status string `json:"status"` // "ok" or a drift description
}

func runVerify(cmd *cobra.Command, opts *VerifyOptions) error {
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

	var store *manifest.Store
	if opts.Database != "" {
		store, err = manifest.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open manifest database", err)
		}
		defer store.Close()
	}

	results := make([]verifiedFixture, 0, len(specs))
	drifted := 0
	for _, sp := range specs {
		path := filepath.Join(opts.OutDir, sp.Name+".wast")
		status := verifyOne(cmd, store, sp.Name, path)
		if status != "ok" {
			drifted++
			slog.Warn("fixture drift", "suite", sp.Name, "status", status)
		}
		results = append(results, verifiedFixture{Suite: sp.Name, Path: path, Status: status})
	}

	if opts.Format == "json" {
		if err := formatter.Success(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			fmt.Fprintf(formatter.Writer, "%s: %s\n", r.Suite, r.Status)
		}
	}

	if drifted > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d fixture(s) drifted", drifted))
	}
	return nil
}

// verifyOne checks one suite's fixture. A missing file, a render
// mismatch, and a manifest digest mismatch are each distinct statuses.
func verifyOne(cmd *cobra.Command, store *manifest.Store, suiteName, path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("missing fixture: %v", err)
	}

	specs, err := selectSuites([]string{suiteName})
	if err != nil {
		return fmt.Sprintf("unknown suite: %v", err)
	}
	rendered, err := wast.Render(specs[0])
	if err != nil {
		return fmt.Sprintf("render failed: %v", err)
	}
	if manifest.HashFixture(rendered.Content) != manifest.HashFixture(content) {
		return "on-disk fixture differs from a fresh render"
	}

	if store != nil {
		if _, err := store.VerifyFixture(cmd.Context(), suiteName, content); err != nil {
			if manifest.IsNotFound(err) {
				return "no recorded run in manifest"
			}
			return err.Error()
		}
	}
	return "ok"
}
