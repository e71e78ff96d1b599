package cli

import (
	"fmt"
	"os"

	"github.com/eleven-am/commentseed/internal/logger"
	"github.com/eleven-am/commentseed/internal/seed"
	"github.com/eleven-am/commentseed/internal/sqlgen"
	"github.com/spf13/cobra"
)

var verifyInput string

func newVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check an emitted file against freshly generated rows",
		Long: `Re-read an INSERT statement written by generate and confirm it is
byte-identical to what the current settings would produce.

Returns exit code 0 if the file matches, 1 otherwise.`,
		Args: cobra.NoArgs,
		RunE: runVerify,
	}

	addGenerateFlags(cmd)
	cmd.Flags().StringVar(&verifyInput, "input", sqlgen.DefaultOutput, "File to verify")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	params, table, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	path := currentConfig().Output.Path
	if cmd.Flags().Changed("input") {
		path = verifyInput
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read SQL file: %w", err)
	}

	rows := seed.Generate(params)
	if err := sqlgen.Verify(table, string(data), rows); err != nil {
		logger.CLI().Warn("verification failed", "path", path, "error", err)
		return err
	}

	printf(cmd, "Verified %d rows in %s\n", len(rows), path)
	return nil
}
