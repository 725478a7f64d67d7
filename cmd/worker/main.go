package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RichardVsc/project/internal/config"
	"github.com/RichardVsc/project/internal/infra/mongodb"
	"github.com/RichardVsc/project/internal/infra/notifier"
	"github.com/RichardVsc/project/internal/infra/rabbitmq"
	"github.com/RichardVsc/project/internal/usecase"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Espera antes de devolver uma mensagem à fila quando o Mongo falha
const requeueDelay = 5 * time.Second

// transferCompletedEvent é o evento que vem do RabbitMQ (JSON)
type transferCompletedEvent struct {
	TransferID  string `json:"transfer_id"`
	PayerID     int64  `json:"payer_id"`
	RecipientID int64  `json:"recipient_id"`
	Amount      int64  `json:"amount"`
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	mongoClient, err := mongo.Connect(clientOptions)
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao criar client MongoDB")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Erro ao desconectar Mongo")
		}
	}()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal().Err(err).Msg("Erro ao pingar MongoDB")
	}
	log.Info().Msg("✅ Conectado ao MongoDB!")

	attemptRepo := mongodb.NewNotificationRepository(mongoClient, cfg.MongoDBName)
	auditRepo := mongodb.NewAuditRepository(mongoClient, cfg.MongoDBName)

	notifierClient := notifier.NewClient(cfg.NotifierURL, cfg.ExternalTimeout)
	sendNotification := usecase.NewSendNotification(attemptRepo, notifierClient)

	conn, err := amqp.DialConfig(cfg.RabbitURL, amqp.Config{
		Properties: amqp.Table{
			"connection_name": "NotificationWorker_Consumer",
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao conectar no RabbitMQ")
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao abrir canal")
	}
	defer ch.Close()

	// Prefetch 1: uma mensagem por vez, o broker espera o Ack.
	// Importante aqui porque um job de notificação pode segurar o worker
	// por minutos entre os retries.
	if err := ch.Qos(1, 0, false); err != nil {
		log.Fatal().Err(err).Msg("Erro ao configurar QoS")
	}

	// Exchange idempotente (garante que existe)
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
		log.Fatal().Err(err).Msg("Erro ao declarar exchange")
	}

	notificationMsgs := mustConsume(ch, "notification_queue", rabbitmq.NotificationRequestKey, "notification_worker")
	auditMsgs := mustConsume(ch, "audit_queue", rabbitmq.TransferCompletedKey, "audit_worker")

	notifyClose := make(chan *amqp.Error)
	ch.NotifyClose(notifyClose)

	log.Info().Msg(" [*] Worker iniciado. Aguardando mensagens...")

	go func() {
		for {
			select {
			case err := <-notifyClose:
				if err != nil {
					// Cai para o Docker/systemd reiniciar
					log.Error().Err(err).Msg("🔴 Canal RabbitMQ fechado")
					os.Exit(1)
				}
				return

			case d, ok := <-notificationMsgs:
				if !ok {
					log.Error().Msg("🔴 Canal de notificações fechado")
					os.Exit(1)
				}
				handleNotification(sendNotification, d)

			case d, ok := <-auditMsgs:
				if !ok {
					log.Error().Msg("🔴 Canal de auditoria fechado")
					os.Exit(1)
				}
				handleAudit(auditRepo, d)
			}
		}
	}()

	// Graceful shutdown (bloqueia a main até receber sinal)
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	<-stopChan

	log.Info().Msg("Shutting down worker...")
}

// mustConsume declara a fila, faz o bind na exchange e registra o consumidor.
func mustConsume(ch *amqp.Channel, queue, routingKey, consumerTag string) <-chan amqp.Delivery {
	q, err := ch.QueueDeclare(
		queue, // name
		true,  // durable (sobrevive a restart do broker)
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		log.Fatal().Err(err).Str("queue", queue).Msg("Erro ao declarar fila")
	}

	err = ch.QueueBind(
		q.Name,
		routingKey,
		rabbitmq.TransferEventsExchange,
		false,
		nil,
	)
	if err != nil {
		log.Fatal().Err(err).Str("queue", queue).Msg("Erro ao fazer bind da fila")
	}

	msgs, err := ch.Consume(
		q.Name,
		consumerTag,
		false, // manual ack: só confirmamos depois de processar
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatal().Err(err).Str("queue", queue).Msg("Erro ao registrar consumidor")
	}
	return msgs
}

func handleNotification(uc *usecase.SendNotificationUseCase, d amqp.Delivery) {
	var job rabbitmq.NotificationJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		log.Error().Err(err).Msg("Erro ao decodificar job de notificação")
		if err := d.Nack(false, false); err != nil {
			log.Error().Err(err).Msg("Erro ao enviar Nack (JSON inválido)")
		}
		return
	}

	// O usecase é best-effort e dono dos retries: daqui só confirmamos o
	// consumo, nunca devolvemos a mensagem para a fila.
	uc.Execute(context.Background(), job.RecipientID, job.Message)

	if err := d.Ack(false); err != nil {
		log.Error().Err(err).Msg("Erro ao enviar Ack")
	}
}

func handleAudit(repo *mongodb.AuditRepository, d amqp.Delivery) {
	var event transferCompletedEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		log.Error().Err(err).Msg("Erro ao decodificar evento de transferência")
		if err := d.Nack(false, false); err != nil {
			log.Error().Err(err).Msg("Erro ao enviar Nack (JSON inválido)")
		}
		return
	}

	auditLog := mongodb.AuditLog{
		TransferID:  event.TransferID,
		PayerID:     event.PayerID,
		RecipientID: event.RecipientID,
		Amount:      event.Amount,
	}

	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repo.Save(saveCtx, auditLog); err != nil {
		log.Error().Err(err).Msg("Erro ao salvar no Mongo")
		// Pausa antes do requeue: com o Mongo fora do ar, devolver a mensagem
		// na hora viraria um loop quente de redelivery contra o broker
		time.Sleep(requeueDelay)
		if err := d.Nack(false, true); err != nil {
			log.Error().Err(err).Msg("Erro ao enviar Nack (Mongo erro)")
		}
		return
	}

	if err := d.Ack(false); err != nil {
		log.Error().Err(err).Msg("Erro ao enviar Ack")
	}
}
