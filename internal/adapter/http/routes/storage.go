package routes

import (
	"context"
	"fmt"

	"ouvidoria/internal/adapter/http/handlers"
	"ouvidoria/internal/adapter/persistence/repository"
	"ouvidoria/internal/config"
	"ouvidoria/internal/domain/entities"
	"ouvidoria/internal/infrastructure/database"
	"ouvidoria/internal/logging"
	"ouvidoria/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Storage is the repository selected by STORAGE_DRIVER plus its readiness check.
type Storage struct {
	Repo  interfaces.IManifestacaoRepository
	Check handlers.StorageCheck
	close func()
}

func (s Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage connects to the configured backend.
func OpenStorage(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case config.StorageMemory, "":
		var seed []entities.Manifestacao
		if cfg.SeedDemo {
			seed = repository.DemoSeed()
		}
		logging.L().Info("[storage] using in-memory repository", zap.Int("seed", len(seed)))
		return Storage{Repo: repository.NewManifestacaoMemoryRepository(seed...)}, nil

	case config.StorageDynamoDB:
		client, err := database.NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return Storage{}, err
		}
		if cfg.AutoCreate {
			if err := database.EnsureManifestacoesTable(ctx, client, cfg.TableName, repository.ManifestacoesProtocoloIndex); err != nil {
				return Storage{}, fmt.Errorf("ensure dynamodb table: %w", err)
			}
		}
		logging.L().Info("[storage] using dynamodb repository", zap.String("table", cfg.TableName), zap.String("endpoint", cfg.Endpoint))
		return Storage{
			Repo:  repository.NewManifestacaoDynamoRepository(client, cfg.TableName),
			Check: database.DynamoDBCheck(client, cfg.TableName),
		}, nil

	case config.StoragePostgres:
		pool, err := database.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return Storage{}, fmt.Errorf("connect postgres: %w", err)
		}
		repo := repository.NewManifestacaoPostgresRepository(pool)
		if cfg.AutoMigrate {
			if err := repo.EnsureSchema(ctx); err != nil {
				pool.Close()
				return Storage{}, fmt.Errorf("migrate postgres: %w", err)
			}
		}
		logging.L().Info("[storage] using postgres repository")
		return Storage{Repo: repo, Check: pool.Ping, close: pool.Close}, nil

	default:
		return Storage{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Driver)
	}
}
