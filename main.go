package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	xcmd "github.com/sagikazarmark/upset-launcher/cmd"
	"github.com/sagikazarmark/upset-launcher/internal/config"
	"github.com/sagikazarmark/upset-launcher/internal/logging"
	"github.com/sagikazarmark/upset-launcher/launcher"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli := xcmd.NewCli()

	var (
		definitionFile string
		debug          bool
		logFormat      string
	)

	cmd := &cobra.Command{
		Use:           "upset-launcher <command>",
		Short:         "upset-launcher - run the upset test suite",
		Version:       version,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if logFormat != "text" && logFormat != "json" {
				return fmt.Errorf("unsupported log format %q", logFormat)
			}

			logger := logging.New(logging.Config{
				Output: cmd.ErrOrStderr(),
				Debug:  debug,
				JSON:   logFormat == "json",
			})

			if !needsDefinition(cmd) {
				return nil
			}

			def, err := config.Load(definitionFile)
			if err != nil {
				return err
			}

			logger.Debug("loaded definition", "file", def.FilePath, "root", def.Root)

			cli.Init(def, logger)

			return nil
		},
	}

	flags := cmd.PersistentFlags()

	flags.StringVarP(
		&definitionFile,
		"file",
		"f",
		config.DefaultFile,
		`Definition file (its directory is the project root)`,
	)

	flags.BoolVar(
		&debug,
		"debug",
		false,
		`Print launcher diagnostics to stderr`,
	)

	flags.StringVar(
		&logFormat,
		"log-format",
		"text",
		`Diagnostics format (text or json)`,
	)

	cmd.AddCommand(
		xcmd.NewTestCommand(cli),
		xcmd.NewEnvCommand(cli),
		xcmd.NewVariantsCommand(cli),
	)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *launcher.ExitError
	if errors.As(err, &exitErr) {
		// The test run already reported its own failure.
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, err)
		}

		return exitErr.Code
	}

	fmt.Fprintln(os.Stderr, err)

	return 1
}

// needsDefinition reports whether cmd works on a project.
// Help and shell completion also work outside of one.
func needsDefinition(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}

	return true
}
