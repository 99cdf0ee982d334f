package main

import (
	"os"

	"github.com/gnolang/gym/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
