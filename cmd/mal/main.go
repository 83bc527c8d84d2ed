package main

import (
	"os"

	"github.com/cwbudde/go-mal/cmd/mal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
