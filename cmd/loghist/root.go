package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/sketchkit/loghist/errs"
)

const (
	defaultBase      = 2
	defaultExponent  = -3
	defaultPrecision = 0.01
)

// options holds this CLI's flags: -b, -e, -p, -P, -q. -h is cobra's
// built-in help flag.
type options struct {
	base       int
	exponent   int
	percentile bool
	precision  float64
	quiet      bool
}

// newRootCommand builds the loghist command tree against the given
// streams, so tests can exercise it without touching os.Stdin/Stdout.
func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := options{base: defaultBase, exponent: defaultExponent, precision: defaultPrecision}

	cmd := &cobra.Command{
		Use:   "loghist [FILE]",
		Short: "Maintain a logarithmic-bucket histogram over a stream of samples",
		Long: "loghist reads floating point samples from standard input and updates a\n" +
			"logarithmic-bucket histogram with them. If FILE is given, the histogram\n" +
			"is loaded from FILE before ingesting stdin (or created fresh if FILE does\n" +
			"not yet exist) and saved back to FILE afterwards.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.base <= 0 {
				return errs.New(errs.PreconditionViolation, "base must be greater than 0, got %d", opts.base)
			}
			if cmd.Flags().Changed("precision") {
				opts.percentile = true
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var filename string
			if len(args) == 1 {
				filename = args[0]
			}
			return runHistogram(opts, filename, stdin, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.IntVarP(&opts.base, "base", "b", defaultBase, "logarithmic base of the histogram")
	flags.IntVarP(&opts.exponent, "exponent", "e", defaultExponent, "initial scale exponent of the histogram")
	flags.BoolVarP(&opts.percentile, "percentiles", "p", false, "report percentiles instead of raw bins")
	flags.Float64VarP(&opts.precision, "precision", "P", defaultPrecision, "percentile step size; implies -p")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress all report output")

	return cmd
}
