package main

import (
	"os"

	"github.com/artcheck/artcheck/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.Run())
}
