// Package mongo is the walks persistence layer: one repository per
// collection (users, regions, walks, walk_difficulties, audit_events), all
// built on the database handle Connect returns.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nzwalks/walks-api/internal/infrastructure/config"
)

const (
	// queryTimeout bounds every repository call in this package.
	queryTimeout = 10 * time.Second
	// connectTimeout covers the initial dial plus the readiness ping.
	connectTimeout = 10 * time.Second
)

// Connect dials the configured walks database and proves it reachable with a
// ping before anything is built on top of it. The client comes back alongside
// the database handle so the caller owns the disconnect.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
