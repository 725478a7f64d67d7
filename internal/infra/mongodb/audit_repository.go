package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// AuditLog é o rastro de auditoria de uma transferência comitada,
// alimentado pelo evento transfer.completed.
type AuditLog struct {
	ID          string    `bson:"_id,omitempty"`
	TransferID  string    `bson:"transfer_id"`
	PayerID     int64     `bson:"payer_id"`
	RecipientID int64     `bson:"recipient_id"`
	Amount      int64     `bson:"amount"`
	ProcessedAt time.Time `bson:"processed_at"`
}

type AuditRepository struct {
	collection *mongo.Collection
}

func NewAuditRepository(client *mongo.Client, dbName string) *AuditRepository {
	collection := client.Database(dbName).Collection("audit_logs")
	return &AuditRepository{collection: collection}
}

func (r *AuditRepository) Save(ctx context.Context, log AuditLog) error {
	log.ProcessedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, log); err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}
	return nil
}
