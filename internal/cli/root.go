package cli

import (
	"fmt"

	"github.com/eleven-am/commentseed/internal/logger"
	"github.com/eleven-am/commentseed/pkg/commentseed"
	"github.com/spf13/cobra"
)

// Global configuration variables
var (
	configFile string
	seedConfig *SeedConfig
	debug      bool
	verbose    bool
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "commentseed",
		Short: "Generate placeholder rows for the comments table",
		Long: `commentseed synthesizes deterministic comment rows (two per tweet for
tweets 1..100) and writes them as a single INSERT statement.

Run without a subcommand to write sql/comments.sql in the current directory.`,
		Version:       commentseed.BuildInfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Configure(debug, verbose)

			var err error
			seedConfig, err = LoadSeedConfig(configFile)
			if err != nil {
				return err
			}

			logger.CLI().Debug("configuration loaded",
				"output", seedConfig.Output.Path,
				"tweets", seedConfig.Generate.Tweets,
				"per_tweet", seedConfig.Generate.PerTweet)
			return nil
		},
		RunE: runGenerate,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: commentseed.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newVerifyCommand())
	rootCmd.AddCommand(newApplyCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func currentConfig() *SeedConfig {
	if seedConfig == nil {
		return DefaultConfig()
	}
	return seedConfig
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
