package main

import (
	"fmt"
	"os"

	"github.com/eleven-am/commentseed/internal/cli"
	"github.com/eleven-am/commentseed/pkg/commentseed"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
var (
	version string
	commit  string
	date    string
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func Execute() error {
	commentseed.SetBuildInfo(version, commit, date)

	cmd := cli.NewRootCommand()
	return cmd.Execute()
}
