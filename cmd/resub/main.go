// Resub re-flows the captions of a SubRip file to a maximum line width.
package main

import (
	"os"

	"github.com/mgpai22/resub/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
