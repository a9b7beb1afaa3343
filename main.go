package main

import (
	"os"

	"github.com/abhisek/codequest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
