package gateway

import "context"

// EventPublisher publica eventos de transferência no broker. Só é chamado
// depois do commit: falha de publicação nunca desfaz a transferência.
type EventPublisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body interface{}) error
}
