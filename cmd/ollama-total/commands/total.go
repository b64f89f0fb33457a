package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
)

// TotalCommand prints the storage used by all the installed models.
type TotalCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewTotalCommand returns the total command, it's the default command.
func NewTotalCommand(rootCmd *RootCommand, app *kingpin.Application) *TotalCommand {
	c := &TotalCommand{rootCmd: rootCmd}
	c.Cmd = app.Command("total", "Show the total storage used by the installed models.").Default()

	return c
}

func (c TotalCommand) Name() string { return c.Cmd.FullCommand() }

func (c TotalCommand) Run(ctx context.Context) error {
	res := summarize(ctx, c.rootCmd)

	if err := newPrinter(c.rootCmd).PrintTotal(res); err != nil {
		return fmt.Errorf("could not print total: %w", err)
	}

	return nil
}
