package main

import (
	"os"

	"github.com/quizdrill/quizdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
