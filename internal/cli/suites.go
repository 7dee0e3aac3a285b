package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSuitesCommand creates the suites command.
func NewSuitesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suites",
		Short: "List the built-in suites",
		Long: `List the built-in suite definitions with their lane shape, family,
and operand table sizes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuites(cmd, rootOpts)
		},
	}
	return cmd
}

// suiteSummary describes one built-in suite.
type suiteSummary struct {
	Name      string   `json:"name"`
	Lane      string   `json:"lane"`
	Family    string   `json:"family"`
	UnaryOps  []string `json:"unary_ops,omitempty"`
	BinaryOps []string `json:"binary_ops,omitempty"`
	Floats    int      `json:"floats"`
	Literals  int      `json:"literals"`
	NaNs      int      `json:"nans"`
}

func runSuites(cmd *cobra.Command, opts *RootOptions) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	specs, err := selectSuites(nil)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load suites", err)
	}

	summaries := make([]suiteSummary, 0, len(specs))
	for _, sp := range specs {
		summaries = append(summaries, suiteSummary{
			Name:      sp.Name,
			Lane:      sp.Lane,
			Family:    string(sp.Family),
			UnaryOps:  sp.UnaryOps,
			BinaryOps: sp.BinaryOps,
			Floats:    len(sp.Floats),
			Literals:  len(sp.Literals),
			NaNs:      len(sp.NaNs),
		})
	}

	if opts.Format == "json" {
		return formatter.Success(summaries)
	}
	for _, s := range summaries {
		fmt.Fprintf(formatter.Writer, "%-18s %-6s %-7s floats=%d literals=%d nans=%d\n",
			s.Name, s.Lane, s.Family, s.Floats, s.Literals, s.NaNs)
	}
	return nil
}
