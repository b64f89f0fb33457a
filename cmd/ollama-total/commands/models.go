package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
)

// ModelsCommand prints the storage used by each installed model.
type ModelsCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewModelsCommand returns the models command.
func NewModelsCommand(rootCmd *RootCommand, app *kingpin.Application) *ModelsCommand {
	c := &ModelsCommand{rootCmd: rootCmd}
	c.Cmd = app.Command("models", "Show the storage used by each installed model and the total.")

	return c
}

func (c ModelsCommand) Name() string { return c.Cmd.FullCommand() }

func (c ModelsCommand) Run(ctx context.Context) error {
	res := summarize(ctx, c.rootCmd)

	if err := newPrinter(c.rootCmd).PrintModels(res); err != nil {
		return fmt.Errorf("could not print models: %w", err)
	}

	return nil
}
