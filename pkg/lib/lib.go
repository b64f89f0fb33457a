package lib

import (
	"context"
	"fmt"

	"github.com/slok/ollama-total/internal/app/total"
	"github.com/slok/ollama-total/internal/log"
	"github.com/slok/ollama-total/internal/ollama"
	"github.com/slok/ollama-total/internal/size"
)

// Config configures the SDK client.
//
// All fields are optional. An empty Config{} runs `ollama list` from PATH.
type Config struct {
	// OllamaBinary is the ollama binary name or path.
	// Default: "ollama".
	OllamaBinary string

	// DockerContainer, when set, runs the listing inside this running container
	// using the Docker API (configured from the standard DOCKER_* env vars).
	DockerContainer string

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger

	// lister overrides the listing source, used on tests.
	lister ollama.Lister
}

func (c *Config) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}

	if c.lister != nil {
		return nil
	}

	if c.DockerContainer != "" {
		l, err := ollama.NewDockerLister(ollama.DockerListerConfig{
			Container: c.DockerContainer,
			Binary:    c.OllamaBinary,
			Logger:    c.Logger,
		})
		if err != nil {
			return fmt.Errorf("could not create docker lister: %w", err)
		}
		c.lister = l
		return nil
	}

	l, err := ollama.NewCLILister(ollama.CLIListerConfig{
		Binary: c.OllamaBinary,
		Logger: c.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create lister: %w", err)
	}
	c.lister = l

	return nil
}

// Client is the main SDK entry point. A Client has no state between calls and
// every call runs the listing again.
type Client struct {
	svc *total.Service
}

// New creates a new SDK client.
func New(cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	svc, err := total.NewService(total.ServiceConfig{
		Lister: cfg.lister,
		Logger: cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// Total returns the storage used by all the installed models in the largest
// unit it reaches (e.g. "3.5 GB", "500.0 MB", "0 B"). It never fails: on error
// the returned string is the error message.
func (c *Client) Total(ctx context.Context) string {
	return c.svc.Total(ctx)
}

// Models returns the per model breakdown.
func (c *Client) Models(ctx context.Context) (*Report, error) {
	r, err := c.svc.Run(ctx)
	if err != nil {
		return nil, err
	}

	return fromModelReport(r, size.Format(r.TotalBytes)), nil
}
