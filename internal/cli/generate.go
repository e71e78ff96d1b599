package cli

import (
	"fmt"

	"github.com/eleven-am/commentseed/internal/logger"
	"github.com/eleven-am/commentseed/internal/seed"
	"github.com/eleven-am/commentseed/internal/sqlgen"
	"github.com/spf13/cobra"
)

var (
	generateOutput   string
	generateTable    string
	generateTweets   int
	generatePerTweet int
	generateUsers    int
	generateMkdir    bool
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the comments INSERT statement",
		Long: `Generate the synthetic comment rows and write them as one INSERT statement,
overwriting the output file. The output directory must exist unless --mkdir is set.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	addGenerateFlags(cmd)
	cmd.Flags().StringVar(&generateOutput, "output", sqlgen.DefaultOutput, "Output file for the INSERT statement")
	cmd.Flags().BoolVar(&generateMkdir, "mkdir", false, "Create the output directory if it is missing")

	return cmd
}

// addGenerateFlags registers the flags shared by every command that needs
// to reproduce the generated rows.
func addGenerateFlags(cmd *cobra.Command) {
	defaults := seed.DefaultParams()
	cmd.Flags().StringVar(&generateTable, "table", sqlgen.DefaultTable, "Target table name")
	cmd.Flags().IntVar(&generateTweets, "tweets", defaults.Tweets, "Number of tweets to comment on")
	cmd.Flags().IntVar(&generatePerTweet, "per-tweet", defaults.PerTweet, "Comments per tweet")
	cmd.Flags().IntVar(&generateUsers, "users", defaults.Users, "Number of distinct user ids")
}

// resolveParams starts from the config, applies any flag set on cmd and
// rejects parameters the synthesizer cannot honor.
func resolveParams(cmd *cobra.Command) (seed.Params, string, error) {
	config := currentConfig()
	params := config.Generate
	table := config.Output.Table

	if cmd.Flags().Changed("tweets") {
		params.Tweets = generateTweets
	}
	if cmd.Flags().Changed("per-tweet") {
		params.PerTweet = generatePerTweet
	}
	if cmd.Flags().Changed("users") {
		params.Users = generateUsers
	}
	if cmd.Flags().Changed("table") {
		table = generateTable
	}

	if err := params.Validate(); err != nil {
		return params, table, err
	}
	return params, table, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config := currentConfig()
	params, table, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	opts := sqlgen.Options{
		Path:       config.Output.Path,
		Table:      table,
		CreateDirs: config.Output.CreateDirs,
	}
	if cmd.Flags().Changed("output") {
		opts.Path = generateOutput
	}
	if cmd.Flags().Changed("mkdir") {
		opts.CreateDirs = generateMkdir
	}

	rows := seed.Generate(params)
	logger.Seed().Info("generated rows", "rows", len(rows), "tweets", params.Tweets, "per_tweet", params.PerTweet)

	result, err := sqlgen.Emit(opts, rows)
	if err != nil {
		return fmt.Errorf("failed to write SQL file: %w", err)
	}

	printf(cmd, "Wrote %d rows to %s\n", result.Rows, result.Path)
	return nil
}
