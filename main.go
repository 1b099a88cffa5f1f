// ContentSearch is a literal multi-pattern content search tool for
// local directory trees.
package main

import (
	"fmt"
	"os"

	"github.com/MisanthropicShayna/ContentSearch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
