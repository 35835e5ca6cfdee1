package main

import (
	"os"

	"github.com/abhisek/probpick/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
