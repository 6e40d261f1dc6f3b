package main

import (
	"os"

	"github.com/inovacc/gpm/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
