package ollama

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/slok/ollama-total/internal/log"
	"github.com/slok/ollama-total/internal/model"
)

// CLIListerConfig is the configuration for the CLI lister.
type CLIListerConfig struct {
	// Binary is the ollama binary name or path.
	Binary string
	Logger log.Logger
}

func (c *CLIListerConfig) defaults() error {
	if c.Binary == "" {
		c.Binary = DefaultBinary
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "ollama.CLILister"})
	return nil
}

// CLILister lists models running the ollama binary on the host.
type CLILister struct {
	binary string
	logger log.Logger
}

// NewCLILister creates a new CLI lister.
func NewCLILister(cfg CLIListerConfig) (*CLILister, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &CLILister{
		binary: cfg.Binary,
		logger: cfg.Logger,
	}, nil
}

func (l *CLILister) Command() string { return l.binary + " list" }

// List runs `ollama list` and waits for it to finish.
func (l *CLILister) List(ctx context.Context) (string, error) {
	l.logger.Debugf("Executing command: %s", l.Command())

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, l.binary, "list")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%q interrupted: %w", l.Command(), ctx.Err())
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			l.logger.Debugf("Command exited with code %d", exitErr.ExitCode())
			return "", &model.CommandError{
				Command:  l.Command(),
				ExitCode: exitErr.ExitCode(),
				Output:   joinOutput(stderr.String(), stdout.String()),
			}
		}
		return "", fmt.Errorf("could not execute %q: %w", l.Command(), err)
	}

	l.logger.Debugf("Command returned %d bytes", stdout.Len())
	return stdout.String(), nil
}

// joinOutput merges the non empty captured streams.
func joinOutput(outs ...string) string {
	parts := make([]string, 0, len(outs))
	for _, o := range outs {
		if o = strings.TrimSpace(o); o != "" {
			parts = append(parts, o)
		}
	}
	return strings.Join(parts, "\n")
}
