package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"ouvidoria/internal/domain/entities"
	"ouvidoria/internal/logging"

	"go.uber.org/zap"
)

// FallbackService calls the primary service and switches to the demonstration service
// the first time the primary is unreachable. The switch is permanent for the value.
// Errors other than ErrBackendUnavailable are returned unchanged.
type FallbackService struct {
	primary  Service
	demo     Service
	demoMode atomic.Bool
	once     sync.Once
	onSwitch func(err error)
}

var _ Service = (*FallbackService)(nil)

func NewFallbackService(primary, demo Service) *FallbackService {
	return &FallbackService{primary: primary, demo: demo}
}

// OnSwitch registers a callback run once when demonstration mode starts.
func (f *FallbackService) OnSwitch(fn func(err error)) { f.onSwitch = fn }

// DemoMode reports whether calls are being served by the demonstration service.
func (f *FallbackService) DemoMode() bool { return f.demoMode.Load() }

func (f *FallbackService) Criar(ctx context.Context, nova entities.NovaManifestacao) (entities.Manifestacao, error) {
	return withFallback(ctx, f, "criar", func(s Service) (entities.Manifestacao, error) { return s.Criar(ctx, nova) })
}

func (f *FallbackService) BuscarPorProtocolo(ctx context.Context, protocolo string) (entities.Manifestacao, error) {
	return withFallback(ctx, f, "buscar", func(s Service) (entities.Manifestacao, error) { return s.BuscarPorProtocolo(ctx, protocolo) })
}

func (f *FallbackService) Listar(ctx context.Context, filtros entities.Filtros) (entities.ListResult, error) {
	return withFallback(ctx, f, "listar", func(s Service) (entities.ListResult, error) { return s.Listar(ctx, filtros) })
}

func (f *FallbackService) AtualizarStatus(ctx context.Context, id string, upd entities.AtualizarStatus) (entities.Manifestacao, error) {
	return withFallback(ctx, f, "atualizar", func(s Service) (entities.Manifestacao, error) { return s.AtualizarStatus(ctx, id, upd) })
}

func (f *FallbackService) Indicadores(ctx context.Context) (entities.Indicadores, error) {
	return withFallback(ctx, f, "indicadores", func(s Service) (entities.Indicadores, error) { return s.Indicadores(ctx) })
}

func withFallback[T any](ctx context.Context, f *FallbackService, op string, call func(Service) (T, error)) (T, error) {
	if f.demoMode.Load() {
		return call(f.demo)
	}
	out, err := call(f.primary)
	if err == nil || !errors.Is(err, ErrBackendUnavailable) || ctx.Err() != nil {
		return out, err
	}
	f.once.Do(func() {
		f.demoMode.Store(true)
		logging.L().Warn("[client][fallback] api unavailable, switching to demonstration data", zap.String("op", op), zap.Error(err))
		if f.onSwitch != nil {
			f.onSwitch(err)
		}
	})
	return call(f.demo)
}
