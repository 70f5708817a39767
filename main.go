package main

import (
	"os"

	"github.com/jmath/jmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
