package main

import (
	"os"

	"github.com/kin-lang/kin/cmd/kin/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
