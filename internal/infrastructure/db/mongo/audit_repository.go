package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nzwalks/walks-api/internal/core/ports"
)

const collectionAudit = "audit_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

type auditDoc struct {
	Resource   string    `bson:"resource"`
	ResourceID string    `bson:"resource_id"`
	Action     string    `bson:"action"`
	Actor      string    `bson:"actor"`
	Timestamp  time.Time `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry *ports.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, auditDoc{
		Resource:   entry.Resource,
		ResourceID: entry.ResourceID,
		Action:     entry.Action,
		Actor:      entry.Actor,
		Timestamp:  entry.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// EnsureIndexes creates the resource lookup index on the audit trail.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "resource", Value: 1}, {Key: "resource_id", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	return err
}
