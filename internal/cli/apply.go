package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/eleven-am/commentseed/internal/loader"
	"github.com/eleven-am/commentseed/internal/seed"
	"github.com/spf13/cobra"
)

var (
	applyURL       string
	applyDriver    string
	applyBatchSize int
	applyTimeout   time.Duration
)

func newApplyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Insert the generated rows into a database",
		Long: `Insert the generated rows into an existing comments table using bound
parameters, in a single transaction. The table must already exist.

Supported drivers: postgres, sqlite3.`,
		Args: cobra.NoArgs,
		RunE: runApply,
	}

	addGenerateFlags(cmd)
	cmd.Flags().StringVar(&applyURL, "url", "", "Database connection URL")
	cmd.Flags().StringVar(&applyDriver, "driver", "postgres", "Database driver (postgres, sqlite3)")
	cmd.Flags().IntVar(&applyBatchSize, "batch-size", loader.DefaultBatchSize, "Rows per INSERT statement")
	cmd.Flags().DurationVar(&applyTimeout, "timeout", 5*time.Minute, "Overall timeout")

	return cmd
}

func runApply(cmd *cobra.Command, args []string) error {
	config := currentConfig()
	params, table, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	dsn := config.Database.URL
	if cmd.Flags().Changed("url") {
		dsn = applyURL
	}
	if dsn == "" {
		return fmt.Errorf("--url or database.url in the config file must be provided")
	}

	driver := config.Database.Driver
	if cmd.Flags().Changed("driver") {
		driver = applyDriver
	}

	batchSize := config.Database.BatchSize
	if cmd.Flags().Changed("batch-size") || batchSize == 0 {
		batchSize = applyBatchSize
	}

	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	db, err := loader.NewDBConfig(driver, dsn).Connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	rows := seed.Generate(params)
	n, err := loader.New(db).Load(ctx, rows, loader.Options{Table: table, BatchSize: batchSize})
	if err != nil {
		return fmt.Errorf("failed to load rows: %w", err)
	}

	printf(cmd, "Loaded %d rows into %s\n", n, table)
	return nil
}
