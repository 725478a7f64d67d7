package main

import (
	"context"
	"os"

	"github.com/RichardVsc/project/internal/config"
	"github.com/RichardVsc/project/internal/domain"
	"github.com/RichardVsc/project/internal/infra/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Seeder de contas de demonstração: 70% pessoa física, 30% lojista,
// com saldos variados. Criação de conta não existe na API.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	ctx := context.Background()

	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Não foi possível conectar ao banco de dados")
	}
	defer dbPool.Close()

	accountRepo := postgres.NewAccountRepository(dbPool)

	seeds := []struct {
		kind    domain.AccountKind
		balance int64 // centavos
	}{
		{domain.AccountKindIndividual, 100_000}, // R$ 1.000,00
		{domain.AccountKindIndividual, 50_000},
		{domain.AccountKindIndividual, 25_050},
		{domain.AccountKindIndividual, 1_000},
		{domain.AccountKindIndividual, 0},
		{domain.AccountKindIndividual, 73_419},
		{domain.AccountKindIndividual, 12_345},
		{domain.AccountKindMerchant, 500_000},
		{domain.AccountKindMerchant, 30_000},
		{domain.AccountKindMerchant, 0},
	}

	for _, s := range seeds {
		account, err := accountRepo.Create(ctx, s.kind, s.balance)
		if err != nil {
			log.Fatal().Err(err).Msg("Falha ao criar conta de demonstração")
		}
		log.Info().
			Int64("id", account.ID).
			Str("kind", string(account.Kind)).
			Int64("balance", account.Balance).
			Msg("Conta criada")
	}

	log.Info().Msg("✅ Seed concluído!")
}
