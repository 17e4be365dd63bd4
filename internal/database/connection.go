// internal/database/connection.go
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forgepeptides/forge-backend/internal/config"
	"github.com/forgepeptides/forge-backend/internal/store"
)

// Connect dials the document store named by the configuration and verifies
// the connection with a ping. A missing connection string is not an error:
// it returns (nil, nil) and the service runs in degraded mode.
func Connect(cfg config.DatabaseConfig) (*store.Mongo, error) {
	if !cfg.Configured() {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	st := store.NewMongo(client, cfg.Name)
	if err := st.Ping(ctx); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	log.Println("Document store connection established successfully")
	return st, nil
}

func Close(s *store.Mongo) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Close(ctx); err != nil {
		log.Printf("Error closing document store connection: %v", err)
	} else {
		log.Println("Document store connection closed successfully")
	}
}
