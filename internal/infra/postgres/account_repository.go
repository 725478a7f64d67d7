package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/RichardVsc/project/internal/gateway"
	"github.com/RichardVsc/project/internal/infra/postgres/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountRepository implementa gateway.AccountRepository usando pgx/v5.
// Dono exclusivo dos registros de conta: toda mutação de saldo passa por aqui,
// sempre dentro de uma transação com a linha travada.
type AccountRepository struct {
	db      *pgxpool.Pool
	queries *db.Queries
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db:      pool,
		queries: db.New(pool),
	}
}

// Create insere uma nova conta. Usado pelo seeder; não há endpoint de criação.
func (r *AccountRepository) Create(ctx context.Context, kind domain.AccountKind, balance int64) (*domain.Account, error) {
	model, err := r.queries.CreateAccount(ctx, db.CreateAccountParams{
		Kind:    string(kind),
		Balance: balance,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return toDomainAccount(model), nil
}

// GetByID busca uma conta sem lock (leitura de resolução/snapshot)
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	model, err := r.queries.GetAccount(ctx, id)
	if err != nil {
		// pgx retorna pgx.ErrNoRows, diferente de sql.ErrNoRows
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return toDomainAccount(model), nil
}

// GetByIDForUpdate trava a linha (SELECT ... FOR UPDATE) até o commit.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	model, err := r.queries.GetAccountForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return toDomainAccount(model), nil
}

// Debit é atômico e valida o saldo no próprio UPDATE (balance >= amount).
func (r *AccountRepository) Debit(ctx context.Context, id int64, amount int64) error {
	rowsAffected, err := r.queries.DebitAccount(ctx, db.DebitAccountParams{
		Amount: amount,
		ID:     id,
	})
	if err != nil {
		return fmt.Errorf("failed to debit account: %w", err)
	}

	// Zero linhas afetadas: a cláusula "AND balance >= amount" barrou o débito
	if rowsAffected == 0 {
		return domain.ErrInsufficientFunds
	}

	return nil
}

func (r *AccountRepository) Credit(ctx context.Context, id int64, amount int64) error {
	return r.queries.CreditAccount(ctx, db.CreditAccountParams{
		Amount: amount,
		ID:     id,
	})
}

// WithTx retorna uma cópia do repositório usando uma transação específica
func (r *AccountRepository) WithTx(tx gateway.TransactionObject) gateway.AccountRepository {
	pgTx, ok := tx.(pgx.Tx)
	if !ok {
		return r
	}
	return &AccountRepository{
		db:      r.db,
		queries: r.queries.WithTx(pgTx),
	}
}

// Mapper: pgtype -> tipos de domínio
func toDomainAccount(a db.Account) *domain.Account {
	return &domain.Account{
		ID:        a.ID,
		Kind:      domain.AccountKind(a.Kind),
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt.Time,
		UpdatedAt: a.UpdatedAt.Time,
	}
}
