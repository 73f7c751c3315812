package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/sagikazarmark/upset-launcher/launcher"
)

func NewVariantsCommand(cli *Cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the available variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariants(cli, cmd)
		},
	}

	return cmd
}

func runVariants(cli *Cli, cmd *cobra.Command) error {
	if cli.definition == nil {
		return fmt.Errorf("definition not loaded")
	}

	variants, err := cli.definition.Variants()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tINTERPRETER\tENV\tDESCRIPTION")

	for _, variant := range variants {
		name := variant.Name
		if name == cli.definition.Default {
			name += " (default)"
		}

		env := lo.Map(variant.Env, func(v launcher.EnvVar, _ int) string { return v.String() })
		if len(env) == 0 {
			env = []string{"-"}
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, variant.Interpreter, strings.Join(env, ","), variant.Description)
	}

	return w.Flush()
}
