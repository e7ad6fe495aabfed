package main

import (
	"os"

	"github.com/Makepad-fr/qasummary/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
