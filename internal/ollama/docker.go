package ollama

import (
	"bytes"
	"context"
	"fmt"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/slok/ollama-total/internal/log"
	"github.com/slok/ollama-total/internal/model"
)

// DockerClient is the interface for Docker operations that we use.
// This allows us to mock the Docker client for testing.
type DockerClient interface {
	ContainerExecCreate(ctx context.Context, containerID string, options container.ExecOptions) (container.ExecCreateResponse, error)
	ContainerExecAttach(ctx context.Context, execID string, config container.ExecAttachOptions) (types.HijackedResponse, error)
	ContainerExecInspect(ctx context.Context, execID string) (container.ExecInspect, error)
}

// DockerListerConfig is the configuration for the Docker lister.
type DockerListerConfig struct {
	// Container is the name or ID of the running container that has ollama.
	Container string
	// Binary is the ollama binary inside the container.
	Binary string
	Client DockerClient
	Logger log.Logger
}

func (c *DockerListerConfig) defaults() error {
	if c.Container == "" {
		return fmt.Errorf("container is required")
	}
	if c.Binary == "" {
		c.Binary = DefaultBinary
	}
	if c.Client == nil {
		// Create a default Docker client
		cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
		if err != nil {
			return fmt.Errorf("could not create Docker client: %w", err)
		}
		c.Client = cli
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "ollama.DockerLister", "container": c.Container})
	return nil
}

// DockerLister lists models running ollama inside a Docker container, for
// setups where ollama is not installed on the host.
type DockerLister struct {
	container string
	binary    string
	client    DockerClient
	logger    log.Logger
}

// NewDockerLister creates a new Docker lister.
func NewDockerLister(cfg DockerListerConfig) (*DockerLister, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &DockerLister{
		container: cfg.Container,
		binary:    cfg.Binary,
		client:    cfg.Client,
		logger:    cfg.Logger,
	}, nil
}

func (l *DockerLister) Command() string {
	return fmt.Sprintf("docker exec %s %s list", l.container, l.binary)
}

// List execs `ollama list` in the container and waits for it to finish.
func (l *DockerLister) List(ctx context.Context) (string, error) {
	l.logger.Debugf("Executing command: %s", l.Command())

	created, err := l.client.ContainerExecCreate(ctx, l.container, container.ExecOptions{
		Cmd:          []string{l.binary, "list"},
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return "", fmt.Errorf("could not create exec in container %s: %w", l.container, err)
	}

	resp, err := l.client.ContainerExecAttach(ctx, created.ID, container.ExecAttachOptions{})
	if err != nil {
		return "", fmt.Errorf("could not attach to exec %s: %w", created.ID, err)
	}
	defer resp.Close()

	// Without TTY docker multiplexes stdout and stderr in the same stream.
	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, resp.Reader); err != nil {
		return "", fmt.Errorf("could not read exec output: %w", err)
	}

	inspect, err := l.client.ContainerExecInspect(ctx, created.ID)
	if err != nil {
		return "", fmt.Errorf("could not inspect exec %s: %w", created.ID, err)
	}

	if inspect.ExitCode != 0 {
		l.logger.Debugf("Command exited with code %d", inspect.ExitCode)
		return "", &model.CommandError{
			Command:  l.Command(),
			ExitCode: inspect.ExitCode,
			Output:   joinOutput(stderr.String(), stdout.String()),
		}
	}

	l.logger.Debugf("Command returned %d bytes", stdout.Len())
	return stdout.String(), nil
}
