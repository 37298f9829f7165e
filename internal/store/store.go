// Package store persists calculation runs and their payment records to a
// local SQLite database so past payouts stay auditable.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/greenbox/royaltyflow/pkg/errors"
	"github.com/greenbox/royaltyflow/pkg/payout"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id             TEXT PRIMARY KEY,
	created_at     TIMESTAMP NOT NULL,
	statement_path TEXT NOT NULL,
	contract_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS payments (
	run_id        TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	position      INTEGER NOT NULL,
	work_title    TEXT NOT NULL,
	party_name    TEXT NOT NULL,
	role          TEXT NOT NULL,
	royalty_type  TEXT NOT NULL,
	percentage    REAL NOT NULL,
	total_royalty REAL NOT NULL,
	amount_to_pay REAL NOT NULL,
	PRIMARY KEY (run_id, position)
);
`

// Run describes one saved calculation run.
type Run struct {
	ID            string
	CreatedAt     time.Time
	StatementPath string
	ContractCount int
	PaymentCount  int
	GrandTotal    float64
}

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the run history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.WrapIO("create", path, err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun records a calculation run and its payment list, returning the new
// run with its generated ID.
func (s *Store) SaveRun(ctx context.Context, statementPath string, contractCount int, payments []payout.Payment) (Run, error) {
	run := Run{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		StatementPath: statementPath,
		ContractCount: contractCount,
		PaymentCount:  len(payments),
		GrandTotal:    payout.GrandTotal(payments),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, statement_path, contract_count) VALUES (?, ?, ?, ?)`,
		run.ID, run.CreatedAt, run.StatementPath, run.ContractCount,
	); err != nil {
		return Run{}, err
	}

	for i, p := range payments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO payments (run_id, position, work_title, party_name, role, royalty_type, percentage, total_royalty, amount_to_pay)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, i, p.WorkTitle, p.PartyName, p.Role, p.RoyaltyType, p.Percentage, p.RevenueTotal, p.AmountToPay,
		); err != nil {
			return Run{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, err
	}
	return run, nil
}

// Runs lists saved runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.created_at, r.statement_path, r.contract_count,
		       COUNT(p.run_id), COALESCE(SUM(p.amount_to_pay), 0)
		FROM runs r
		LEFT JOIN payments p ON p.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.StatementPath,
			&run.ContractCount, &run.PaymentCount, &run.GrandTotal); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Payments returns the payment list of a saved run in calculation order.
func (s *Store) Payments(ctx context.Context, runID string) ([]payout.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT work_title, party_name, role, royalty_type, percentage, total_royalty, amount_to_pay
		FROM payments WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []payout.Payment
	for rows.Next() {
		var p payout.Payment
		if err := rows.Scan(&p.WorkTitle, &p.PartyName, &p.Role, &p.RoyaltyType,
			&p.Percentage, &p.RevenueTotal, &p.AmountToPay); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if len(payments) == 0 {
		return nil, errors.ErrNotFound
	}
	return payments, rows.Err()
}
