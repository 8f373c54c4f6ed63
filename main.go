package main

import (
	"fmt"
	"os"

	"github.com/omegaatt36/renamer/app"
	"github.com/omegaatt36/renamer/internal/adapter/fs"
	"github.com/omegaatt36/renamer/internal/adapter/regex"
)

func main() {
	fileSystem := &fs.OSFileSystem{}
	patternMatcher := &regex.Engine{}

	if err := app.NewCommand(fileSystem, patternMatcher).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
