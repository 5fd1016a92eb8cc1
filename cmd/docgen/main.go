// Command docgen generates the man pages of tempconv.
//
// It is kept apart from tempconv itself, whose arguments are all read as
// temperatures.
//
// Usage:
//
//	docgen [dir]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/lone-faerie/tempconv/cmd"
	"github.com/lone-faerie/tempconv/internal/build"
)

func genMan(dir string) error {
	hdr := &doc.GenManHeader{
		Title:   "TEMPCONV",
		Section: "1",
		Source:  "tempconv " + build.Version(),
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	return doc.GenManTree(cmd.NewCmdRoot(), hdr, dir)
}

func main() {
	dir := "docs/man"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := genMan(dir); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
