// Package main implements the grayknuth CLI: balanced-weight encoding and
// decoding of binary strings.
package main

import (
	"os"

	"github.com/spf13/afero"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
