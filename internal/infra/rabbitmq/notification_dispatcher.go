package rabbitmq

import (
	"context"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/RichardVsc/project/internal/gateway"
	"github.com/rs/zerolog/log"
)

// NotificationJob é a mensagem consumida pelo worker de notificação.
type NotificationJob struct {
	RecipientID int64  `json:"recipient_id"`
	Message     string `json:"message"`
}

// NotificationDispatcher implementa gateway.NotificationDispatcher publicando
// o job na fila. Best-effort: falha aqui é logada e engolida, nunca derruba
// uma transferência já comitada.
type NotificationDispatcher struct {
	publisher gateway.EventPublisher
}

func NewNotificationDispatcher(publisher gateway.EventPublisher) *NotificationDispatcher {
	return &NotificationDispatcher{publisher: publisher}
}

func (d *NotificationDispatcher) Dispatch(ctx context.Context, recipientID int64) {
	job := NotificationJob{
		RecipientID: recipientID,
		Message:     domain.TransferReceivedMessage,
	}

	if err := d.publisher.Publish(ctx, TransferEventsExchange, NotificationRequestKey, job); err != nil {
		log.Error().Err(err).Int64("recipient_id", recipientID).Msg("Falha ao enfileirar notificação")
	}
}
