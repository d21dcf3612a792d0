package main

import (
	"os"

	"github.com/abhisek/linguaquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
