package main

import (
	"os"

	"github.com/DaanHessen/dbconf/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
