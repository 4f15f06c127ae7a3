package main

import (
	"os"

	"github.com/agentbiz/onboard/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
