// Package testhelper starts a shared MongoDB container for integration tests.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lenasun/kebab-api/internal/adapter/mongodb"
	"github.com/lenasun/kebab-api/internal/config"
)

var (
	once      sync.Once
	sharedURI string
	initErr   error
)

// SetupTestDB starts a shared MongoDB container (once for the entire test run)
// and returns a fresh, uniquely named database on it with indexes applied.
// The database is dropped and the client disconnected via t.Cleanup; the
// container lives until the process exits.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	once.Do(func() {
		sharedURI, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongodb.NewClient(ctx, TestDatabaseConfig(sharedURI))
	if err != nil {
		t.Fatalf("testhelper: failed to connect: %v", err)
	}

	db := client.Database("test_" + uuid.New().String()[:8])
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("testhelper: ensure indexes: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

// URI returns the connection string of the shared container. SetupTestDB
// must have been called first.
func URI() string {
	return sharedURI
}

// TestDatabaseConfig returns a DatabaseConfig pointing at uri with small pool
// settings suitable for tests.
func TestDatabaseConfig(uri string) config.DatabaseConfig {
	return config.DatabaseConfig{
		URI:            uri,
		Name:           "kebabDB_test",
		MaxPoolSize:    10,
		ConnectTimeout: 10 * time.Second,
		MaxConnIdle:    time.Minute,
	}
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForLog("Waiting for connections").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("mongodb://%s:%s/?directConnection=true", host, port.Port()), nil
}
