package main

import (
	"os"

	"github.com/zjrosen/gitpanes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
