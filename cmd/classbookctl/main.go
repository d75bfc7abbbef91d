package main

import (
	"fmt"
	"os"

	"github.com/yigit/classbook/internal/cli"
)

var Version = "dev"

func main() {
	if err := cli.NewRootCommand(Version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
