package main

import (
	"os"

	"github.com/inkinquiry/cmdmaster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
