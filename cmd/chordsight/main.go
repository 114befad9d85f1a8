package main

import (
	"os"

	"github.com/chordsight/chordsight/cmd/chordsight/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
