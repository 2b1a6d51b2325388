package database

import (
	"context"
	"database/sql"
)

// TxRunner runs a function inside a transaction, committing on nil error
// and rolling back otherwise.
type TxRunner interface {
	RunTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type txRunner struct{ db *sql.DB }

func NewTxRunner(db *sql.DB) TxRunner { return &txRunner{db: db} }

func (r *txRunner) RunTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
