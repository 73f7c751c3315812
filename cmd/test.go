package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
)

type testOptions struct {
	variantOptions
}

func NewTestCommand(cli *Cli) *cobra.Command {
	var opts testOptions

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the test suite",
		Long: `Discover and run the tests of the project.

The project root is the directory containing the definition file. Its source
directory is appended to PYTHONPATH and the selected interpreter runs
"-m unittest discover -v -s tests" from the project root. The exit code of the
test run becomes the exit code of this command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(cmd.Context(), cli, cmd, &opts)
		},
	}

	flags := cmd.Flags()

	addVariantFlags(flags, &opts.variantOptions)

	return cmd
}

func runTest(ctx context.Context, cli *Cli, cmd *cobra.Command, opts *testOptions) error {
	variant, err := cli.selectVariant(&opts.variantOptions)
	if err != nil {
		return err
	}

	l, err := cli.launcher(cmd)
	if err != nil {
		return err
	}

	cli.logger.Debug("selected variant", slog.String("variant", variant.Name), slog.String("root", l.Root))

	return l.Launch(ctx, variant)
}
