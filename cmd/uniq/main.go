// Command uniq prints each distinct line of its input once, in first-seen
// order, optionally with occurrence counts. Run uniq -h for usage.
package main

import (
	"os"

	"github.com/bitfield/uniq/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
