// textkit - line-oriented text processing toolkit.
//
// textkit reads comment-aware logical lines from text files and runs them
// through configurable string transforms.
package main

import (
	"os"

	"github.com/textkit-dev/textkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
