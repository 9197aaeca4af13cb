package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"ouvidoria/internal/domain/entities"
	"ouvidoria/internal/logging"
	"ouvidoria/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrManifestacaoNotFound  = errors.New("manifestacao not found")
	ErrInvalidManifestacao   = errors.New("invalid manifestacao")
	ErrInvalidManifestacaoID = errors.New("invalid manifestacao id")
	ErrInvalidProtocolo      = errors.New("invalid protocolo")
	ErrProtocoloExhausted    = errors.New("could not allocate a free protocolo")
)

const maxProtocoloAttempts = 5

// IManifestacaoUseCase exposes the ouvidoria operations.
//
// Mapping to the citizen/staff flows:
//   - "Nova Manifestação" => Criar()
//   - "Consultar Protocolo" => BuscarPorProtocolo()
//   - "Painel do Atendente" => Listar() + AtualizarStatus()
//   - "Dashboard" => Indicadores()
//
//go:generate mockgen -source=manifestacao_usecase.go -destination=../adapter/http/handlers/mocks/mock_manifestacao_usecase.go -package=mocks
type IManifestacaoUseCase interface {
	Criar(ctx context.Context, nova entities.NovaManifestacao) (entities.Manifestacao, error)
	BuscarPorProtocolo(ctx context.Context, protocolo string) (entities.Manifestacao, error)
	Listar(ctx context.Context, filtros entities.Filtros) (entities.ListResult, error)
	AtualizarStatus(ctx context.Context, id string, upd entities.AtualizarStatus) (entities.Manifestacao, error)
	Indicadores(ctx context.Context) (entities.Indicadores, error)
}

type ManifestacaoUseCase struct {
	repo interfaces.IManifestacaoRepository
	now  func() time.Time
	rnd  *rand.Rand
}

var _ IManifestacaoUseCase = (*ManifestacaoUseCase)(nil)

type Option func(*ManifestacaoUseCase)

// WithClock overrides time.Now, used for creation/update stamps and "hoje".
func WithClock(now func() time.Time) Option {
	return func(u *ManifestacaoUseCase) { u.now = now }
}

// WithRand fixes the protocol number source.
func WithRand(r *rand.Rand) Option {
	return func(u *ManifestacaoUseCase) { u.rnd = r }
}

func NewManifestacaoUseCase(repo interfaces.IManifestacaoRepository, opts ...Option) *ManifestacaoUseCase {
	u := &ManifestacaoUseCase{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *ManifestacaoUseCase) Criar(ctx context.Context, nova entities.NovaManifestacao) (entities.Manifestacao, error) {
	nova = trimNova(nova)
	if nova.Nome == "" || nova.Email == "" || nova.Telefone == "" || nova.Descricao == "" || nova.Endereco == "" {
		return entities.Manifestacao{}, ErrInvalidManifestacao
	}
	if !nova.Tipo.IsValid() {
		return entities.Manifestacao{}, entities.ErrInvalidTipo
	}

	now := u.now()
	m := entities.Manifestacao{
		Nome:        nova.Nome,
		Email:       nova.Email,
		Telefone:    nova.Telefone,
		Tipo:        nova.Tipo,
		Status:      entities.StatusAberta,
		Assunto:     nova.Assunto,
		Descricao:   nova.Descricao,
		Endereco:    nova.Endereco,
		DataCriacao: now.UTC(),
	}

	// The lookup skips protocols already in use; the store still has the last word,
	// so a duplicate on insert draws again within the same budget.
	for attempt := 1; attempt <= maxProtocoloAttempts; attempt++ {
		m.ID = uuid.NewString()
		m.Protocolo = entities.NewProtocolo(now, u.rnd)

		existing, err := u.repo.GetByProtocolo(ctx, m.Protocolo)
		if err != nil {
			return entities.Manifestacao{}, err
		}
		if existing.ID != "" {
			logging.L().Warn("[manifestacao][usecase] protocolo collision", zap.String("protocolo", m.Protocolo), zap.Int("attempt", attempt))
			continue
		}

		created, err := u.repo.Create(ctx, m)
		if errors.Is(err, interfaces.ErrDuplicateManifestacao) {
			logging.L().Warn("[manifestacao][usecase] duplicate on create", zap.String("protocolo", m.Protocolo), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			logging.L().Error("[manifestacao][usecase] create failed", zap.String("protocolo", m.Protocolo), zap.Error(err))
			return entities.Manifestacao{}, err
		}
		logging.L().Info("[manifestacao][usecase] create success",
			zap.String("id", created.ID), zap.String("protocolo", created.Protocolo), zap.String("tipo", string(created.Tipo)))
		return created, nil
	}
	return entities.Manifestacao{}, ErrProtocoloExhausted
}

func (u *ManifestacaoUseCase) BuscarPorProtocolo(ctx context.Context, protocolo string) (entities.Manifestacao, error) {
	protocolo = entities.NormalizeProtocolo(protocolo)
	if protocolo == "" {
		return entities.Manifestacao{}, ErrInvalidProtocolo
	}

	m, err := u.repo.GetByProtocolo(ctx, protocolo)
	if err != nil {
		return entities.Manifestacao{}, err
	}
	if m.ID == "" {
		return entities.Manifestacao{}, ErrManifestacaoNotFound
	}
	return m, nil
}

func (u *ManifestacaoUseCase) Listar(ctx context.Context, filtros entities.Filtros) (entities.ListResult, error) {
	if filtros.Status != "" && !filtros.Status.IsValid() {
		return entities.ListResult{}, entities.ErrInvalidStatus
	}
	if filtros.Tipo != "" && !filtros.Tipo.IsValid() {
		return entities.ListResult{}, entities.ErrInvalidTipo
	}

	items, err := u.repo.List(ctx, filtros)
	if err != nil {
		return entities.ListResult{}, err
	}
	entities.SortByCriacaoDesc(items)
	return entities.Paginate(items, filtros.Page, filtros.Limit), nil
}

func (u *ManifestacaoUseCase) AtualizarStatus(ctx context.Context, id string, upd entities.AtualizarStatus) (entities.Manifestacao, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Manifestacao{}, ErrInvalidManifestacaoID
	}
	if !upd.Status.IsValid() {
		return entities.Manifestacao{}, entities.ErrInvalidStatus
	}
	upd.Observacoes = strings.TrimSpace(upd.Observacoes)

	updated, err := u.repo.UpdateStatus(ctx, id, upd, u.now().UTC())
	if err != nil {
		logging.L().Error("[manifestacao][usecase] update status failed", zap.String("id", id), zap.Error(err))
		return entities.Manifestacao{}, err
	}
	if updated.ID == "" {
		return entities.Manifestacao{}, ErrManifestacaoNotFound
	}
	logging.L().Info("[manifestacao][usecase] status updated",
		zap.String("id", id), zap.String("protocolo", updated.Protocolo), zap.String("status", string(updated.Status)))
	return updated, nil
}

func (u *ManifestacaoUseCase) Indicadores(ctx context.Context) (entities.Indicadores, error) {
	items, err := u.repo.List(ctx, entities.Filtros{})
	if err != nil {
		return entities.Indicadores{}, err
	}
	return entities.CalcularIndicadores(items, u.now()), nil
}

func trimNova(n entities.NovaManifestacao) entities.NovaManifestacao {
	n.Nome = strings.TrimSpace(n.Nome)
	n.Email = strings.TrimSpace(n.Email)
	n.Telefone = strings.TrimSpace(n.Telefone)
	n.Assunto = strings.TrimSpace(n.Assunto)
	n.Descricao = strings.TrimSpace(n.Descricao)
	n.Endereco = strings.TrimSpace(n.Endereco)
	return n
}
