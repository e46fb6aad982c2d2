// Command logbridge reads "LEVEL message" lines from stdin and bridges them
// into a zap, zerolog, logrus, slog or olog host logger.
package main

import (
	"os"

	"github.com/trickstertwo/logbridge/internal/cli"
)

func main() {
	cli.SetDefaultDependencies(&cli.Dependencies{
		HostFactory: cli.NewHost,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
	})
	cli.Execute()
}
