package main

import (
	"os"

	"github.com/arthur-debert/graft/cmd/graft/commands"
)

func main() {
	os.Exit(commands.Execute())
}
