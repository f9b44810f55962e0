package main

import (
	"fmt"
	"os"

	"github.com/harshv5094/mango-titus/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
