// topsize reports the largest files under a directory tree.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/topsize/internal/cli"
)

// version is overridden at build time through ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
