// Command gapi is a command-line client for Google REST APIs.
package main

import (
	"os"

	"github.com/custodia-labs/gapi/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
