package main

import (
	"os"

	"github.com/georgemunganga/printa-closet/cmd/closet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
