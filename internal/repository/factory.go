package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/mrled/suns/textval/internal/model"
	"github.com/mrled/suns/textval/internal/repository/dynamorepo"
	"github.com/mrled/suns/textval/internal/repository/memrepo"
)

// RepositoryConfig holds configuration for creating a repository
type RepositoryConfig struct {
	// FilePath for JSON file persistence (ignored when DynamoTable is set)
	FilePath string

	// DynamoTable is the DynamoDB table name for persistence
	DynamoTable string

	// DynamoEndpoint is an optional custom DynamoDB endpoint URL
	DynamoEndpoint string
}

// IsPersistent reports whether the configuration names any durable store
func (c RepositoryConfig) IsPersistent() bool {
	return c.DynamoTable != "" || c.FilePath != ""
}

// NewRepository creates a CheckRepository based on the provided configuration.
// DynamoDB takes precedence over a JSON file; with neither configured the
// repository lives only in memory.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (model.CheckRepository, error) {
	if cfg.DynamoTable != "" {
		client, err := NewDynamoClient(ctx, cfg.DynamoEndpoint)
		if err != nil {
			return nil, err
		}

		slog.Debug("Using DynamoDB persistence", slog.String("table", cfg.DynamoTable))
		return dynamorepo.NewDynamoRepository(client, cfg.DynamoTable), nil
	}

	if cfg.FilePath != "" {
		memRepo, err := memrepo.NewMemoryRepositoryWithPersistence(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create repository: %w", err)
		}
		slog.Debug("Using JSON persistence", slog.String("file", cfg.FilePath))
		return memRepo, nil
	}

	slog.Debug("Using in-memory persistence")
	return memrepo.NewMemoryRepository(), nil
}

// NewDynamoClient loads the default AWS configuration and returns a DynamoDB
// client, pointed at endpoint when it is not empty.
func NewDynamoClient(ctx context.Context, endpoint string) (*dynamodb.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if endpoint != "" {
		slog.Debug("Using DynamoDB endpoint", slog.String("endpoint", endpoint))
		return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = &endpoint
		}), nil
	}

	return dynamodb.NewFromConfig(awsCfg), nil
}
