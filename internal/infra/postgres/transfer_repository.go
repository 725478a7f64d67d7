package postgres

import (
	"context"
	"fmt"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/RichardVsc/project/internal/gateway"
	"github.com/RichardVsc/project/internal/infra/postgres/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransferRepository struct {
	db      *pgxpool.Pool
	queries *db.Queries
}

func NewTransferRepository(pool *pgxpool.Pool) *TransferRepository {
	return &TransferRepository{
		db:      pool,
		queries: db.New(pool),
	}
}

// Create insere o registro append-only da transferência. Deve rodar dentro
// da mesma transação que o débito/crédito (via WithTx).
func (r *TransferRepository) Create(ctx context.Context, transfer *domain.Transfer) error {
	row, err := r.queries.CreateTransfer(ctx, db.CreateTransferParams{
		PayerID:     transfer.PayerID,
		RecipientID: transfer.RecipientID,
		Amount:      transfer.Amount,
	})
	if err != nil {
		return fmt.Errorf("failed to create transfer record: %w", err)
	}

	// Devolve ao objeto de domínio o ID e CreatedAt gerados pelo banco
	transfer.ID = row.ID.String()
	transfer.CreatedAt = row.CreatedAt.Time

	return nil
}

func (r *TransferRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.Transfer, error) {
	rows, err := r.queries.ListTransfersByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	transfers := make([]domain.Transfer, 0, len(rows))
	for _, row := range rows {
		transfers = append(transfers, domain.Transfer{
			ID:          row.ID.String(),
			PayerID:     row.PayerID,
			RecipientID: row.RecipientID,
			Amount:      row.Amount,
			CreatedAt:   row.CreatedAt.Time,
		})
	}
	return transfers, nil
}

func (r *TransferRepository) WithTx(tx gateway.TransactionObject) gateway.TransferRepository {
	pgTx, ok := tx.(pgx.Tx)
	if !ok {
		return r
	}
	return &TransferRepository{
		db:      r.db,
		queries: r.queries.WithTx(pgTx),
	}
}
