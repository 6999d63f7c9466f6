// Command quantio is a calculator and unit converter for the terminal.
package main

import (
	"github.com/herissonneves/quantio/internal/adapters/driving/cli"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
