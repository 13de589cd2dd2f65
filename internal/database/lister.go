// Package database talks to the MongoDB server. Its only job is producing
// the list of database names a backup can pick from; everything heavier is
// delegated to the external MongoDB Database Tools.
package database

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/artisanexperiences/mongovault/internal/config"
)

// serverSelectionTimeout bounds how long the driver waits for a usable
// server before the connection is considered failed.
const serverSelectionTimeout = 5 * time.Second

// ConnectionError reports that the server could not be reached.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to MongoDB: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// OperationError reports that the server was reachable but a command failed,
// typically because of authentication or authorization.
type OperationError struct {
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("MongoDB operation failed: %v", e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// ListNames connects to the server at url, pings it, and returns its
// database names sorted alphabetically. Reserved system databases are
// filtered out unless includeSystem is set.
func ListNames(ctx context.Context, url string, includeSystem bool) ([]string, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(url).
		SetServerSelectionTimeout(serverSelectionTimeout))
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, &ConnectionError{Err: err}
	}

	names, err := client.ListDatabaseNames(ctx, bson.D{})
	if err != nil {
		return nil, &OperationError{Err: err}
	}

	return FilterAndSort(names, includeSystem), nil
}

// FilterAndSort drops reserved system databases (unless includeSystem) and
// returns the remaining names in alphabetical order.
func FilterAndSort(names []string, includeSystem bool) []string {
	reserved := make(map[string]struct{}, len(config.SystemDatabases))
	for _, name := range config.SystemDatabases {
		reserved[name] = struct{}{}
	}

	result := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := reserved[name]; ok && !includeSystem {
			continue
		}
		result = append(result, name)
	}

	sort.Strings(result)
	return result
}
