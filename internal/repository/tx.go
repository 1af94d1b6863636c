package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// TxOptions bounds every write transaction.
type TxOptions struct {
	Timeout     time.Duration
	LockTimeout time.Duration
}

// DefaultTxOptions are used when the config leaves the values unset.
var DefaultTxOptions = TxOptions{
	Timeout:     5 * time.Second,
	LockTimeout: 3 * time.Second,
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

type store struct {
	db       *dbpg.DB
	strategy retry.Strategy
	txOpts   TxOptions
}

func newStore(db *dbpg.DB, opts TxOptions) store {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTxOptions.Timeout
	}
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = DefaultTxOptions.LockTimeout
	}
	return store{db: db, strategy: defaultStrategy(), txOpts: opts}
}

// inTx runs fn inside one transaction bounded by the configured timeout.
// Any error returned by fn rolls the transaction back.
func (s store) inTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.txOpts.Timeout)
	defer cancel()

	tx, err := s.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return classify(ctx, "begin tx", err)
	}
	defer tx.Rollback()

	lockTimeout := fmt.Sprintf("SET LOCAL lock_timeout = %d", s.txOpts.LockTimeout.Milliseconds())
	if _, err = tx.ExecContext(ctx, lockTimeout); err != nil {
		return classify(ctx, "set lock timeout", err)
	}

	if err = fn(ctx, tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return classify(ctx, "commit", err)
	}
	return nil
}
