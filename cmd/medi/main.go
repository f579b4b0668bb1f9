package main

import (
	"os"

	"github.com/coosanta-bit/medi/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
