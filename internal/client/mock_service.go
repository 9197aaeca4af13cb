package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ouvidoria/internal/adapter/persistence/repository"
	"ouvidoria/internal/domain/entities"
	"ouvidoria/internal/usecase"
)

// Latency simulates network time per operation in demonstration mode.
type Latency struct {
	Criar       time.Duration
	Buscar      time.Duration
	Listar      time.Duration
	Atualizar   time.Duration
	Indicadores time.Duration
}

// DemoLatency matches the delays the demonstration data was designed around.
var DemoLatency = Latency{
	Criar:       1000 * time.Millisecond,
	Buscar:      500 * time.Millisecond,
	Listar:      800 * time.Millisecond,
	Atualizar:   600 * time.Millisecond,
	Indicadores: 400 * time.Millisecond,
}

// MockService serves the demonstration records from memory. State lives for the
// lifetime of the value.
type MockService struct {
	uc      usecase.IManifestacaoUseCase
	latency Latency
}

var _ Service = (*MockService)(nil)

// NewMockService seeds an in-memory repository with repository.DemoSeed.
func NewMockService(latency Latency, opts ...usecase.Option) *MockService {
	repo := repository.NewManifestacaoMemoryRepository(repository.DemoSeed()...)
	return &MockService{uc: usecase.NewManifestacaoUseCase(repo, opts...), latency: latency}
}

func (m *MockService) Criar(ctx context.Context, nova entities.NovaManifestacao) (entities.Manifestacao, error) {
	if err := sleep(ctx, m.latency.Criar); err != nil {
		return entities.Manifestacao{}, err
	}
	out, err := m.uc.Criar(ctx, nova)
	return out, fromUseCase(err)
}

func (m *MockService) BuscarPorProtocolo(ctx context.Context, protocolo string) (entities.Manifestacao, error) {
	if err := sleep(ctx, m.latency.Buscar); err != nil {
		return entities.Manifestacao{}, err
	}
	out, err := m.uc.BuscarPorProtocolo(ctx, protocolo)
	return out, fromUseCase(err)
}

func (m *MockService) Listar(ctx context.Context, f entities.Filtros) (entities.ListResult, error) {
	if err := sleep(ctx, m.latency.Listar); err != nil {
		return entities.ListResult{}, err
	}
	out, err := m.uc.Listar(ctx, f)
	return out, fromUseCase(err)
}

func (m *MockService) AtualizarStatus(ctx context.Context, id string, upd entities.AtualizarStatus) (entities.Manifestacao, error) {
	if err := sleep(ctx, m.latency.Atualizar); err != nil {
		return entities.Manifestacao{}, err
	}
	out, err := m.uc.AtualizarStatus(ctx, id, upd)
	return out, fromUseCase(err)
}

func (m *MockService) Indicadores(ctx context.Context) (entities.Indicadores, error) {
	if err := sleep(ctx, m.latency.Indicadores); err != nil {
		return entities.Indicadores{}, err
	}
	out, err := m.uc.Indicadores(ctx)
	return out, fromUseCase(err)
}

// fromUseCase gives use case errors the shape APIClient would return for them.
func fromUseCase(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrManifestacaoNotFound):
		return ErrNotFound
	case errors.Is(err, usecase.ErrInvalidManifestacao),
		errors.Is(err, usecase.ErrInvalidManifestacaoID),
		errors.Is(err, usecase.ErrInvalidProtocolo),
		errors.Is(err, entities.ErrInvalidTipo),
		errors.Is(err, entities.ErrInvalidStatus):
		return &APIError{Status: http.StatusBadRequest, Code: "INVALID_REQUEST", Message: err.Error()}
	default:
		return err
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
