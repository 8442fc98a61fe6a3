// CLI client entry point for GPCR Activity Studio.
package main

import (
	"os"

	"github.com/turtacn/gpcr-studio/internal/config"
	"github.com/turtacn/gpcr-studio/internal/interfaces/cli"
)

// version is injected via ldflags at build time.
var version = "dev"

func main() {
	if version != "" {
		config.Version = version
	}
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
