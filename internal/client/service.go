// Package client talks to the ouvidoria API on behalf of the terminal front-end, with a
// demonstration backend used when the API cannot be reached.
package client

import (
	"context"
	"errors"
	"fmt"

	"ouvidoria/internal/domain/entities"
)

var (
	// ErrNotFound is returned when the protocol or id does not exist.
	ErrNotFound = errors.New("manifestacao not found")
	// ErrBackendUnavailable wraps transport failures and gateway errors.
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// Service is implemented by APIClient, MockService and FallbackService.
type Service interface {
	Criar(ctx context.Context, nova entities.NovaManifestacao) (entities.Manifestacao, error)
	BuscarPorProtocolo(ctx context.Context, protocolo string) (entities.Manifestacao, error)
	// Listar returns a page; Limit 0 returns every match.
	Listar(ctx context.Context, filtros entities.Filtros) (entities.ListResult, error)
	AtualizarStatus(ctx context.Context, id string, upd entities.AtualizarStatus) (entities.Manifestacao, error)
	Indicadores(ctx context.Context) (entities.Indicadores, error)
}

// APIError is a non-2xx answer other than 404.
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}
