package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sagikazarmark/upset-launcher/internal/config"
	"github.com/sagikazarmark/upset-launcher/launcher"
)

type Cli struct {
	definition *config.Definition
	logger     *slog.Logger
}

func NewCli() *Cli {
	return &Cli{}
}

func (c *Cli) Init(def *config.Definition, logger *slog.Logger) {
	c.definition = def
	c.logger = logger
}

func (c *Cli) launcher(cmd *cobra.Command) (launcher.Launcher, error) {
	if c.definition == nil {
		return launcher.Launcher{}, fmt.Errorf("definition not loaded")
	}

	return launcher.Launcher{
		Root:   c.definition.Root,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: c.logger,
	}, nil
}
