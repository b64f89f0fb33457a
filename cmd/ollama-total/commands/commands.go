package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/ollama-total/internal/app/total"
	"github.com/slok/ollama-total/internal/log"
	"github.com/slok/ollama-total/internal/ollama"
	"github.com/slok/ollama-total/internal/printer"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug           bool
	NoLog           bool
	NoColor         bool
	LoggerType      string
	Format          string
	OllamaBinary    string
	DockerContainer string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("format", "Output format (text, json, yaml).").Default(formatText).EnumVar(&c.Format, formatText, formatJSON, formatYAML)
	app.Flag("ollama-bin", "Ollama binary name or path.").Default(ollama.DefaultBinary).StringVar(&c.OllamaBinary)
	app.Flag("docker-container", "Run the ollama listing inside this running Docker container instead of the host.").StringVar(&c.DockerContainer)

	return c
}

// newLister returns the lister selected by the global flags.
func newLister(rootCmd *RootCommand) (ollama.Lister, error) {
	if rootCmd.DockerContainer != "" {
		l, err := ollama.NewDockerLister(ollama.DockerListerConfig{
			Container: rootCmd.DockerContainer,
			Binary:    rootCmd.OllamaBinary,
			Logger:    rootCmd.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create docker lister: %w", err)
		}
		return l, nil
	}

	l, err := ollama.NewCLILister(ollama.CLIListerConfig{
		Binary: rootCmd.OllamaBinary,
		Logger: rootCmd.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create lister: %w", err)
	}
	return l, nil
}

// summarize runs the total service. Failures are part of the result, never an error,
// so the caller always has something to print.
func summarize(ctx context.Context, rootCmd *RootCommand) printer.Result {
	lister, err := newLister(rootCmd)
	if err != nil {
		return printer.Result{Total: total.ErrorMessage(err), Err: true}
	}

	svc, err := total.NewService(total.ServiceConfig{
		Lister: lister,
		Logger: rootCmd.Logger,
	})
	if err != nil {
		return printer.Result{Total: total.ErrorMessage(err), Err: true}
	}

	res, report := svc.Summarize(ctx)
	if report == nil {
		rootCmd.Logger.Warningf("Could not compute models total: %s", res)
	}

	return printer.Result{Total: res, Report: report, Err: report == nil}
}

func newPrinter(rootCmd *RootCommand) printer.Printer {
	switch rootCmd.Format {
	case formatJSON:
		return printer.NewJSONPrinter(rootCmd.Stdout)
	case formatYAML:
		return printer.NewYAMLPrinter(rootCmd.Stdout)
	default:
		return printer.NewTablePrinter(rootCmd.Stdout)
	}
}
