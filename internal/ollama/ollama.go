package ollama

import "context"

// DefaultBinary is the default ollama binary looked up in PATH.
const DefaultBinary = "ollama"

// Lister returns the raw text printed by the model listing command.
type Lister interface {
	// List runs the listing and returns its standard output.
	List(ctx context.Context) (string, error)
	// Command returns the human name of the listing command (e.g. "ollama list").
	Command() string
}
