package main

import (
	"os"

	"github.com/devroad/devroad/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
