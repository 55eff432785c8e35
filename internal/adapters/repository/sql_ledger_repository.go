package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/codec"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

var _ domain.LedgerRepository = (*SQLLedgerRepository)(nil)

// SQLLedgerRepository stores one row per identity with the ledger as its
// JSON wire form. Queries are written with ? and rebound per driver.
type SQLLedgerRepository struct {
	db *sqlx.DB
}

func NewSQLLedgerRepository(db *sqlx.DB) *SQLLedgerRepository {
	return &SQLLedgerRepository{
		db: db,
	}
}

func (r *SQLLedgerRepository) Load(ctx context.Context, identity string) (domain.Ledger, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.Rebind(`SELECT daily_data FROM ledgers WHERE identity = ?`)

	var raw []byte
	if err := r.db.GetContext(ctx, &raw, query, identity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLedgerNotFound
		}
		return nil, fmt.Errorf("repository: load ledger failed: %w", err)
	}

	ledger, err := codec.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("repository: ledger for %s: %w: %v", identity, domain.ErrCorruptLedger, err)
	}
	return ledger, nil
}

func (r *SQLLedgerRepository) Save(ctx context.Context, identity string, ledger domain.Ledger) error {
	if err := ledger.CheckInvariants(); err != nil {
		return err
	}

	data, err := codec.Encode(ledger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.Rebind(`
		INSERT INTO ledgers (identity, daily_data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (identity) DO UPDATE
		SET daily_data = excluded.daily_data, updated_at = excluded.updated_at
	`)

	if _, err := r.db.ExecContext(ctx, query, identity, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("repository: save ledger failed: %w", err)
	}
	return nil
}

// Identities lists every identity with a stored ledger, sorted.
func (r *SQLLedgerRepository) Identities(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, `SELECT identity FROM ledgers ORDER BY identity`); err != nil {
		return nil, fmt.Errorf("repository: list identities failed: %w", err)
	}
	return ids, nil
}
