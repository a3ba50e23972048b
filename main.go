package main

import (
	"os"

	"github.com/emberwatch/emberwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
