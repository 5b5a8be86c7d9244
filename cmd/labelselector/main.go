package main

import (
	"os"

	"github.com/parsekit/labelselector/internal/cli"
)

func main() {
	command := cli.New()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
