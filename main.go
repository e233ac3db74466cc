package main

import (
	"os"

	"building-query/cli"
)

func main() {
	os.Exit(cli.Execute())
}
