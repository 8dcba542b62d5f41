package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongoMigration "drportal/internal/migrations/mongo"
	appconfig "drportal/pkg/config"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoURI := os.Getenv(appconfig.EnvMongoURI)
	if mongoURI == "" {
		mongoURI = appconfig.DefaultMongoURI
	}
	dbName := os.Getenv(appconfig.EnvMongoDatabaseName)
	if dbName == "" {
		dbName = appconfig.DefaultMongoDatabaseName
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	fmt.Printf("Connected to MongoDB at %s\n", mongoURI)

	if err := mongoMigration.RunMigration(ctx, client, dbName); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if seedFile := os.Getenv(appconfig.EnvServiceSeedFile); seedFile != "" {
		if err := mongoMigration.SeedServices(ctx, client, dbName, seedFile); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}

	fmt.Println("Migration completed.")
}
