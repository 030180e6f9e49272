// Command bereia is the dictionary pipeline CLI: the batch conjugation
// transform, the interlinear transliteration patcher and a small JSON API
// over the engine.
package main

import (
	"os"

	"github.com/jmo-jr/bereia/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
