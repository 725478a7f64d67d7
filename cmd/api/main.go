package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/RichardVsc/project/internal/config"
	"github.com/RichardVsc/project/internal/gateway"
	"github.com/RichardVsc/project/internal/infra/authorizer"
	"github.com/RichardVsc/project/internal/infra/http/handler"
	internalMiddleware "github.com/RichardVsc/project/internal/infra/http/middleware"
	"github.com/RichardVsc/project/internal/infra/postgres"
	"github.com/RichardVsc/project/internal/infra/rabbitmq"
	redisInfra "github.com/RichardVsc/project/internal/infra/redis"
	"github.com/RichardVsc/project/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Logs estruturados (Zerolog), bonitos no terminal
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	ctx := context.Background()

	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Não foi possível conectar ao banco de dados")
	}
	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("Banco de dados não está respondendo")
	}
	log.Info().Msg("✅ Conectado ao PostgreSQL com sucesso!")

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// Sem Redis não há lock por pagador nem idempotência: fatal aqui,
		// diferente dos eventos, que são best-effort.
		log.Fatal().Err(err).Msg("Não foi possível conectar ao Redis")
	}
	log.Info().Msg("✅ Conectado ao Redis!")

	rabbitConn, err := amqp.DialConfig(cfg.RabbitURL, amqp.Config{
		Properties: amqp.Table{
			"connection_name": "TransferAPI_Publisher",
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("Falha ao conectar no RabbitMQ (eventos e notificações não serão enviados)")
	} else {
		defer rabbitConn.Close()
		log.Info().Msg("✅ Conectado ao RabbitMQ!")
	}

	var eventPublisher gateway.EventPublisher
	var notificationDispatcher gateway.NotificationDispatcher
	if rabbitConn != nil {
		ch, err := rabbitConn.Channel()
		if err != nil {
			log.Fatal().Err(err).Msg("Falha ao abrir canal RabbitMQ")
		}
		defer ch.Close()

		// Exchange de tópicos dos eventos de transferência
		err = ch.ExchangeDeclare(
			rabbitmq.TransferEventsExchange, // name
			"topic",                         // type
			true,                            // durable
			false,                           // auto-deleted
			false,                           // internal
			false,                           // no-wait
			nil,                             // arguments
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Falha ao declarar Exchange")
		}

		publisher := rabbitmq.NewRabbitMQPublisher(ch)
		eventPublisher = publisher
		notificationDispatcher = rabbitmq.NewNotificationDispatcher(publisher)
	} else {
		eventPublisher = noopPublisher{}
		notificationDispatcher = noopDispatcher{}
	}

	// Camada de infraestrutura
	idempotencyRepo := redisInfra.NewIdempotencyRepository(redisClient)
	payerLock := redisInfra.NewPayerLock(redisClient)
	accountRepository := postgres.NewAccountRepository(dbPool)
	transferRepository := postgres.NewTransferRepository(dbPool)
	uow := postgres.NewUow(dbPool)
	authorizerClient := authorizer.NewClient(cfg.AuthorizerURL, cfg.ExternalTimeout)

	// Camada de usecase
	processor := usecase.NewTransferProcessor(accountRepository, transferRepository, uow)
	transferUseCase := usecase.NewTransferMoney(
		accountRepository,
		processor,
		authorizerClient,
		payerLock,
		eventPublisher,
		notificationDispatcher,
	)
	statementUseCase := usecase.NewGetStatement(accountRepository, transferRepository)

	// Handlers
	transferHandler := handler.NewTransferHandler(transferUseCase)
	statementHandler := handler.NewStatementHandler(statementUseCase)

	// Servidor HTTP (Router Chi)
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer) // Evita crash se der panic
	router.Use(middleware.Timeout(60 * time.Second))
	idempotencyMiddleware := internalMiddleware.Idempotency(idempotencyRepo)

	// Health check (para o Docker saber se estamos vivos)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("Falha ao escrever resposta de health check")
		}
	})

	router.Group(func(r chi.Router) {
		r.Use(idempotencyMiddleware)
		r.Post("/transfers", transferHandler.Create)
	})
	router.Get("/accounts/{id}/statement", statementHandler.Get)

	port := ":" + cfg.Port
	log.Info().Msgf("🚀 Servidor rodando na porta %s", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal().Err(err).Msg("Falha ao iniciar servidor HTTP")
	}
}

// noopPublisher/noopDispatcher entram quando o RabbitMQ está fora:
// a transferência continua funcionando, só sem evento/notificação.
type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, exchange, routingKey string, body interface{}) error {
	log.Warn().Str("routing_key", routingKey).Msg("RabbitMQ indisponível, evento descartado")
	return nil
}

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(ctx context.Context, recipientID int64) {
	log.Warn().Int64("recipient_id", recipientID).Msg("RabbitMQ indisponível, notificação descartada")
}
