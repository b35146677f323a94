package main

import (
	"fmt"
	"os"

	"github.com/doeshing/termsh/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "termsh: %v\n", err)
		os.Exit(1)
	}
}
