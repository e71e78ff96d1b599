package loader

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/eleven-am/commentseed/internal/logger"
	"github.com/eleven-am/commentseed/internal/seed"
	"github.com/eleven-am/commentseed/internal/sqlgen"
	"github.com/jmoiron/sqlx"
)

// DefaultBatchSize keeps each statement well under the postgres bind
// parameter limit.
const DefaultBatchSize = 500

// Options configures Load
type Options struct {
	Table     string
	BatchSize int
}

// Loader inserts rows inside a single transaction
type Loader struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Loader {
	return &Loader{db: db}
}

// Load inserts every row with bound parameters and returns how many rows
// the database reported as affected. Either all rows land or none do.
func (l *Loader) Load(ctx context.Context, rows []seed.Row, opts Options) (int64, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	log := logger.DB().WithField("table", tableName(opts.Table))

	var total int64
	err := l.withTransaction(ctx, func(tx *sqlx.Tx) error {
		for start := 0; start < len(rows); start += opts.BatchSize {
			end := min(start+opts.BatchSize, len(rows))

			query, args, err := sqlgen.InsertBuilder(opts.Table, rows[start:end]).
				PlaceholderFormat(placeholderFormat(l.db.DriverName())).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build insert query: %w", err)
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("failed to insert rows %d-%d: %w", rows[start].ID, rows[end-1].ID, err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to read affected rows: %w", err)
			}
			total += affected

			log.Debug("inserted batch", "from", rows[start].ID, "to", rows[end-1].ID)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("loaded rows", "rows", total)
	return total, nil
}

func (l *Loader) withTransaction(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := l.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelDefault})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	err = fn(tx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

func placeholderFormat(driver string) squirrel.PlaceholderFormat {
	if driver == "postgres" {
		return squirrel.Dollar
	}
	return squirrel.Question
}

func tableName(table string) string {
	if table == "" {
		return sqlgen.DefaultTable
	}
	return table
}
