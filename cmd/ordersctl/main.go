package main

import (
	"os"

	"github.com/vfg2006/orders-report-api/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
