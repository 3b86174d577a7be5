package main

import (
	"os"

	"github.com/petal-dev/petal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
