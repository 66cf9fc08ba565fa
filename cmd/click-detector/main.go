package main

import (
	"fmt"
	"os"

	"mouse-roi/internal/cli"
)

func main() {
	cmd := cli.NewCommand(cli.ClickTool, os.Stdout, cli.RunClickDetector)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
