package cli

import (
	"github.com/eleven-am/commentseed/pkg/commentseed"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display commentseed version and build information",
		Run: func(cmd *cobra.Command, args []string) {
			printf(cmd, "%s", commentseed.FullVersionInfo())
		},
	}
}
