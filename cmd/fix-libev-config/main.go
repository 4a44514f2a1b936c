// Command fix-libev-config prints a pyproject.toml with its libev include and
// library directories replaced. CI uses it to point the build at a libev
// installed outside the default locations.
//
//	fix-libev-config <pyproject> <include> <lib>
package main

import (
	"os"

	"github.com/danieljhkim/extplan/internal/cli"
)

func main() {
	os.Exit(cli.RunPatch(os.Args[1:], os.Stdout, os.Stderr))
}
