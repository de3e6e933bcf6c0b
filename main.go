package main

import (
	"os"

	"github.com/octagram/jaemin/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
