package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so the
// same store implementations work inside and outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres provides pgx-backed stores and transaction support.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Users() UserStore                 { return &userStore{q: p.pool} }
func (p *Postgres) Sessions() SessionStore           { return &sessionStore{q: p.pool} }
func (p *Postgres) Organizations() OrganizationStore { return &organizationStore{q: p.pool} }
func (p *Postgres) Memberships() MembershipStore     { return &membershipStore{q: p.pool} }
func (p *Postgres) Invites() InviteStore             { return &inviteStore{q: p.pool} }

// WithTx runs fn inside a database transaction. The provider passed to fn
// yields stores bound to that transaction; the transaction commits only if
// fn returns nil.
func (p *Postgres) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&txProvider{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

type txProvider struct {
	tx pgx.Tx
}

func (t *txProvider) Users() UserStore                 { return &userStore{q: t.tx} }
func (t *txProvider) Sessions() SessionStore           { return &sessionStore{q: t.tx} }
func (t *txProvider) Organizations() OrganizationStore { return &organizationStore{q: t.tx} }
func (t *txProvider) Memberships() MembershipStore     { return &membershipStore{q: t.tx} }
func (t *txProvider) Invites() InviteStore             { return &inviteStore{q: t.tx} }

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
