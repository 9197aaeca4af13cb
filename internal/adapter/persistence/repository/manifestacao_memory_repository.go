package repository

import (
	"context"
	"sync"
	"time"

	"ouvidoria/internal/domain/entities"
	"ouvidoria/internal/usecase/interfaces"
)

var ErrDuplicateID = interfaces.ErrDuplicateManifestacao

// ManifestacaoMemoryRepository keeps manifestações in process memory. It backs the
// demonstration mode and local runs without DynamoDB.
type ManifestacaoMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.Manifestacao
}

var _ interfaces.IManifestacaoRepository = (*ManifestacaoMemoryRepository)(nil)

func NewManifestacaoMemoryRepository(seed ...entities.Manifestacao) *ManifestacaoMemoryRepository {
	items := make([]entities.Manifestacao, 0, len(seed))
	for _, m := range seed {
		items = append(items, cloneManifestacao(m))
	}
	return &ManifestacaoMemoryRepository{items: items}
}

func (r *ManifestacaoMemoryRepository) Create(_ context.Context, m entities.Manifestacao) (entities.Manifestacao, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.ID == m.ID || it.Protocolo == m.Protocolo {
			return entities.Manifestacao{}, ErrDuplicateID
		}
	}
	r.items = append(r.items, cloneManifestacao(m))
	return cloneManifestacao(m), nil
}

func (r *ManifestacaoMemoryRepository) GetByID(_ context.Context, id string) (entities.Manifestacao, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return cloneManifestacao(r.items[i]), nil
	}
	return entities.Manifestacao{}, nil
}

func (r *ManifestacaoMemoryRepository) GetByProtocolo(_ context.Context, protocolo string) (entities.Manifestacao, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.Protocolo == protocolo {
			return cloneManifestacao(it), nil
		}
	}
	return entities.Manifestacao{}, nil
}

func (r *ManifestacaoMemoryRepository) List(_ context.Context, f entities.Filtros) ([]entities.Manifestacao, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Manifestacao, 0, len(r.items))
	for _, it := range r.items {
		if f.Match(it) {
			out = append(out, cloneManifestacao(it))
		}
	}
	return out, nil
}

func (r *ManifestacaoMemoryRepository) UpdateStatus(_ context.Context, id string, upd entities.AtualizarStatus, at time.Time) (entities.Manifestacao, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return entities.Manifestacao{}, nil
	}
	stamp := at
	r.items[i].Status = upd.Status
	r.items[i].Observacoes = upd.Observacoes
	r.items[i].DataAtualizacao = &stamp
	return cloneManifestacao(r.items[i]), nil
}

func (r *ManifestacaoMemoryRepository) indexOf(id string) int {
	for i, it := range r.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func cloneManifestacao(m entities.Manifestacao) entities.Manifestacao {
	if m.DataAtualizacao != nil {
		t := *m.DataAtualizacao
		m.DataAtualizacao = &t
	}
	return m
}
