package main

import (
	"os"

	"github.com/gnolang/tgrep/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
