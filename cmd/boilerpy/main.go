// Command boilerpy extracts main content from HTML documents.
package main

import (
	"fmt"
	"os"

	"github.com/sammyer/boilerpy/internal/cliapp"
)

func main() {
	if err := cliapp.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
