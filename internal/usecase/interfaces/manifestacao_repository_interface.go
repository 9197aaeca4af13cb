package interfaces

import (
	"context"
	"errors"
	"ouvidoria/internal/domain/entities"
	"time"
)

// ErrDuplicateManifestacao is returned by Create when the id or the protocolo is already taken.
var ErrDuplicateManifestacao = errors.New("manifestacao already exists")

// IManifestacaoRepository abstracts persistence for Manifestacao.
//
// Lookups return a zero Manifestacao (empty ID) and a nil error when nothing matches;
// the use case turns that into ErrManifestacaoNotFound.
//
//go:generate mockgen -source=manifestacao_repository_interface.go -destination=mocks/mock_manifestacao_repository.go -package=mock_interfaces
type IManifestacaoRepository interface {
	Create(ctx context.Context, m entities.Manifestacao) (entities.Manifestacao, error)
	GetByID(ctx context.Context, id string) (entities.Manifestacao, error)
	GetByProtocolo(ctx context.Context, protocolo string) (entities.Manifestacao, error)
	List(ctx context.Context, filtros entities.Filtros) ([]entities.Manifestacao, error)
	UpdateStatus(ctx context.Context, id string, upd entities.AtualizarStatus, at time.Time) (entities.Manifestacao, error)
}
