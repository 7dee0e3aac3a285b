package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/lanegen/internal/literal"
	"github.com/roach88/lanegen/internal/oracle"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Lane string
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <op> <operand> [operand]",
		Short: "Evaluate one operation against the oracle",
		Long: `Evaluate a single lane operation and print the classified result.

Operands use fixture literal spellings: decimal ("1.5"), hex float
("0x1p-149"), infinities ("inf", "-inf"), and NaNs ("nan",
"nan:0x200000").

Example:
  lanegen eval --lane f32x4 add 1.0 2.0
  lanegen eval --lane f64x2 sqrt -- -1.0`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Lane, "lane", "f32x4", "lane shape (f32x4|f64x2)")

	return cmd
}

// evalOutcome is the reported result of one evaluation.
type evalOutcome struct {
	Op      string   `json:"op"`
	Lane    string   `json:"lane"`
	Args    []string `json:"args"`
	Outcome string   `json:"outcome"` // "value", "canonical-nan", "arithmetic-nan"
	Value   string   `json:"value,omitempty"`
}

func runEval(cmd *cobra.Command, opts *EvalOptions, args []string) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var cfg oracle.Config
	switch opts.Lane {
	case "f32x4":
		cfg = oracle.F32()
	case "f64x2":
		cfg = oracle.F64()
	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown lane %q", opts.Lane))
	}
	orc, err := oracle.New(cfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build oracle", err)
	}

	op := args[0]
	operands := make([]literal.Literal, len(args)-1)
	for i, a := range args[1:] {
		lit, err := literal.Parse(a)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("bad operand %q", a), err)
		}
		operands[i] = lit
	}

	var res oracle.Result
	if len(operands) == 1 {
		res, err = orc.UnaryOp(oracle.Op(op), operands[0])
	} else {
		res, err = orc.BinaryOp(oracle.Op(op), operands[0], operands[1])
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "evaluation failed", err)
	}

	out := evalOutcome{Op: op, Lane: opts.Lane, Args: args[1:]}
	switch v := res.(type) {
	case oracle.Concrete:
		out.Outcome = "value"
		out.Value = v.Lit.String()
	case oracle.CanonicalNaN:
		out.Outcome = "canonical-nan"
	case oracle.ArithmeticNaN:
		out.Outcome = "arithmetic-nan"
	}

	if opts.Format == "json" {
		return formatter.Success(out)
	}
	fmt.Fprintln(formatter.Writer, oracle.String(res))
	return nil
}
