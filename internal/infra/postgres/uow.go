package postgres

import (
	"context"
	"fmt"

	"github.com/RichardVsc/project/internal/gateway"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Uow implementa gateway.TransactionManager
type Uow struct {
	pool *pgxpool.Pool
}

func NewUow(pool *pgxpool.Pool) *Uow {
	return &Uow{pool: pool}
}

// Run executa uma função dentro de uma transação ACID.
// Se a função retornar erro, faz Rollback. Se sucesso, Commit.
// O lock_timeout limita a espera por row locks: transferências
// concorrentes não podem bloquear indefinidamente.
func (u *Uow) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted, // Os row locks garantem a serialização por conta
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Defer Rollback: se o Commit não rodar (pânico ou erro), garante rollback
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, "SET LOCAL lock_timeout = '5s'"); err != nil {
		return fmt.Errorf("failed to set lock timeout: %w", err)
	}

	// Injeta a transação para os repositórios via WithTx
	ctxWithTx := context.WithValue(ctx, gateway.TransactionKey, tx)

	if err := fn(ctxWithTx); err != nil {
		return err // Rollback automático pelo defer
	}

	return tx.Commit(ctx)
}
