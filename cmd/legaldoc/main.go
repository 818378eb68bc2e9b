package main

import (
	"fmt"
	"os"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
