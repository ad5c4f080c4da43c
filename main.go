package main

import (
	"os"

	"github.com/subjunto/subjunto/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
