// Package lib provides a Go SDK to compute the storage used by the installed
// Ollama models.
//
// This package allows applications to get the same total the ollama-total CLI
// prints without shelling out to it.
//
// # Quick Start
//
//	client, err := lib.New(lib.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(client.Total(ctx)) // e.g. "3.5 GB".
//
// # Errors
//
// [Client.Total] never fails, errors are returned as a message in place of the
// total ("Error running ollama list: ..." or "Unexpected error: ..."). Use
// [Client.Models] to get the per model breakdown and the Go error. Command
// failures match [ErrCommandFailed] with [errors.Is].
//
// # Logging
//
// By default the SDK is silent. Pass a [log.Logger] in [Config] to get log
// output, see the log sub-package.
package lib
