package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/sagikazarmark/upset-launcher/launcher"
)

// variantOptions contains options that are shared between commands
type variantOptions struct {
	variant    string
	configured bool
}

// addVariantFlags adds the variant selection flags to a command
func addVariantFlags(flags *pflag.FlagSet, opts *variantOptions) {
	flags.StringVar(
		&opts.variant,
		"variant",
		"",
		`Variant to run (defaults to the definition's default variant)`,
	)

	flags.BoolVar(
		&opts.configured,
		"configured",
		false,
		`Shorthand for --variant `+launcher.ConfiguredVariant,
	)
}

// selectVariant resolves the variant chosen on the command line
func (c *Cli) selectVariant(opts *variantOptions) (launcher.Variant, error) {
	if c.definition == nil {
		return launcher.Variant{}, fmt.Errorf("definition not loaded")
	}

	name := opts.variant

	if opts.configured {
		if name != "" && name != launcher.ConfiguredVariant {
			return launcher.Variant{}, fmt.Errorf("--configured conflicts with --variant %s", name)
		}

		name = launcher.ConfiguredVariant
	}

	return c.definition.Variant(name)
}
