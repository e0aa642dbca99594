package main

import (
	"os"

	"github.com/hashicorp-forge/uos/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
