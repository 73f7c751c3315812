package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type envOptions struct {
	variantOptions
}

func NewEnvCommand(cli *Cli) *cobra.Command {
	var opts envOptions

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the resolved test invocation without running it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnv(cli, cmd, &opts)
		},
	}

	flags := cmd.Flags()

	addVariantFlags(flags, &opts.variantOptions)

	return cmd
}

func runEnv(cli *Cli, cmd *cobra.Command, opts *envOptions) error {
	variant, err := cli.selectVariant(&opts.variantOptions)
	if err != nil {
		return err
	}

	l, err := cli.launcher(cmd)
	if err != nil {
		return err
	}

	inv, err := l.Prepare(variant)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "variant: %s\n", variant.Name)
	fmt.Fprintf(out, "dir: %s\n", inv.Dir)
	fmt.Fprintf(out, "command: %s\n", inv.CommandLine())
	fmt.Fprintln(out, "env:")

	for _, v := range inv.Set {
		fmt.Fprintf(out, "  %s\n", v)
	}

	return nil
}
