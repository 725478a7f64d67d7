package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/RichardVsc/project/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// notificationAttemptDoc é o documento persistido; tags bson, não json.
type notificationAttemptDoc struct {
	ID           string    `bson:"_id"`
	RecipientID  int64     `bson:"recipient_id"`
	Message      string    `bson:"message"`
	Status       string    `bson:"status"`
	AttemptCount int       `bson:"attempt_count"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// NotificationRepository é o dono exclusivo do estado dos jobs de notificação.
type NotificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(client *mongo.Client, dbName string) *NotificationRepository {
	collection := client.Database(dbName).Collection("notification_attempts")
	return &NotificationRepository{collection: collection}
}

func (r *NotificationRepository) Create(ctx context.Context, attempt *domain.NotificationAttempt) error {
	now := time.Now()
	attempt.CreatedAt = now
	attempt.UpdatedAt = now

	doc := notificationAttemptDoc{
		ID:           attempt.ID,
		RecipientID:  attempt.RecipientID,
		Message:      attempt.Message,
		Status:       string(attempt.Status),
		AttemptCount: attempt.AttemptCount,
		CreatedAt:    attempt.CreatedAt,
		UpdatedAt:    attempt.UpdatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert notification attempt: %w", err)
	}
	return nil
}

func (r *NotificationRepository) UpdateStatus(ctx context.Context, id string, status domain.NotificationStatus, attemptCount int) error {
	update := bson.M{"$set": bson.M{
		"status":        string(status),
		"attempt_count": attemptCount,
		"updated_at":    time.Now(),
	}}

	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("failed to update notification attempt: %w", err)
	}
	return nil
}
