package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"ouvidoria/internal/client"
	"ouvidoria/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func TestCalcularSla(t *testing.T) {
	aged := func(d time.Duration) entities.Manifestacao {
		return entities.Manifestacao{DataCriacao: now.Add(-d)}
	}
	day := 24 * time.Hour

	buckets := CalcularSla([]entities.Manifestacao{
		aged(-time.Hour),
		aged(0),
		aged(2*day + 23*time.Hour),
		aged(3 * day),
		aged(7*day + time.Hour),
		aged(8 * day),
		aged(14*day + 23*time.Hour),
		aged(15 * day),
		aged(90 * day),
	}, now)

	require.Len(t, buckets, 4)
	assert.Equal(t, SlaBucket{Label: "0-2 dias", Color: "#28a745", Total: 3}, buckets[0])
	assert.Equal(t, SlaBucket{Label: "3-7 dias", Color: "#ffc107", Total: 2}, buckets[1])
	assert.Equal(t, SlaBucket{Label: "8-14 dias", Color: "#fd7e14", Total: 2}, buckets[2])
	assert.Equal(t, SlaBucket{Label: ">14 dias", Color: "#dc3545", Total: 2}, buckets[3])
}

func TestCalcularSla_Empty(t *testing.T) {
	buckets := CalcularSla(nil, now)
	require.Len(t, buckets, 4)
	for _, b := range buckets {
		assert.Zero(t, b.Total, b.Label)
	}
}

func TestDistribuicaoTipos(t *testing.T) {
	ind := entities.NewIndicadores()
	ind.PorTipo[entities.TipoElogio] = 2
	ind.PorTipo[entities.TipoDenuncia] = 1

	got := DistribuicaoTipos(ind)
	require.Len(t, got, 2)
	assert.Equal(t, entities.TipoDenuncia, got[0].Tipo)
	assert.Equal(t, "Denúncia", got[0].Label)
	assert.Equal(t, entities.TipoDenuncia.Color(), got[0].Color)
	assert.Equal(t, 2, got[1].Total)

	assert.Empty(t, DistribuicaoTipos(entities.NewIndicadores()))
}

func TestDashboard_Carregar(t *testing.T) {
	d := New(client.NewMockService(client.Latency{}), WithClock(clock))

	snap, err := d.Carregar(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Erros)
	assert.NoError(t, snap.Err())

	assert.Equal(t, 5, snap.Indicadores.Total)
	assert.Equal(t, now, snap.AtualizadoEm)

	require.Len(t, snap.Ultimas, 5)
	assert.Equal(t, "2024000005", snap.Ultimas[0].Protocolo)

	require.Len(t, snap.Serie, DefaultSerieDia)
	assert.True(t, snap.Serie[0].Dia.Before(snap.Serie[len(snap.Serie)-1].Dia))
	assert.Equal(t, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), snap.Serie[29].Dia)
	assert.Equal(t, 1, snap.Serie[22].Total, "13/01")
	assert.Equal(t, 1, snap.Serie[23].Total, "14/01")
	assert.Equal(t, 3, snap.Serie[24].Total, "15/01")
	sum := 0
	for _, p := range snap.Serie {
		sum += p.Total
	}
	assert.Equal(t, 5, sum)

	require.Len(t, snap.SLA, 4)
	assert.Equal(t, 2, snap.SLA[1].Total, "both open records are five days old")

	assert.Len(t, snap.Tipos, 5)
}

func TestDashboard_SerieDiariaBounded(t *testing.T) {
	svc := &countingService{Service: client.NewMockService(client.Latency{})}
	d := New(svc, WithClock(clock))

	serie, err := d.SerieDiaria(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, serie, 7)
	assert.Equal(t, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), serie[0].Dia)
	assert.Equal(t, int32(7), svc.listCalls.Load())
	assert.LessOrEqual(t, svc.maxInFlight.Load(), int32(maxParallel))
}

func TestDashboard_CarregarPartial(t *testing.T) {
	down := errors.New("sla panel down")
	svc := &countingService{Service: client.NewMockService(client.Latency{}), abertaErr: down}

	snap, err := New(svc, WithClock(clock)).Carregar(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Erros, 1)
	assert.True(t, snap.Falhou(PainelSLA))
	assert.ErrorIs(t, snap.Erros[PainelSLA], down)
	assert.ErrorIs(t, snap.Err(), down)
	assert.Nil(t, snap.SLA)

	assert.Equal(t, 5, snap.Indicadores.Total)
	assert.Len(t, snap.Tipos, 5)
	assert.Len(t, snap.Ultimas, 5)
	assert.Len(t, snap.Serie, DefaultSerieDia)
	assert.Equal(t, 3, snap.Serie[DefaultSerieDia-1-5].Total)
	assert.Equal(t, now, snap.AtualizadoEm)
}

func TestDashboard_CarregarEveryPanelFails(t *testing.T) {
	boom := errors.New("boom")
	svc := &countingService{Service: client.NewMockService(client.Latency{}), listErr: boom, indErr: boom}

	snap, err := New(svc, WithClock(clock)).Carregar(context.Background())
	require.NoError(t, err)
	for _, p := range []string{PainelIndicadores, PainelUltimas, PainelSerie, PainelSLA} {
		assert.True(t, snap.Falhou(p), p)
	}
	assert.Equal(t, 0, snap.Indicadores.Total)
	assert.Empty(t, snap.Tipos)
	assert.ErrorIs(t, snap.Err(), boom)
}

func TestDashboard_CarregarCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(client.NewMockService(client.Latency{}), WithClock(clock)).Carregar(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type countingService struct {
	client.Service
	listErr     error
	abertaErr   error
	indErr      error
	listCalls   atomic.Int32
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (s *countingService) Listar(ctx context.Context, f entities.Filtros) (entities.ListResult, error) {
	s.listCalls.Add(1)
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		cur := s.maxInFlight.Load()
		if n <= cur || s.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	if s.listErr != nil {
		return entities.ListResult{}, s.listErr
	}
	if s.abertaErr != nil && f.Status == entities.StatusAberta {
		return entities.ListResult{}, s.abertaErr
	}
	time.Sleep(time.Millisecond)
	return s.Service.Listar(ctx, f)
}

func (s *countingService) Indicadores(ctx context.Context) (entities.Indicadores, error) {
	if s.indErr != nil {
		return entities.Indicadores{}, s.indErr
	}
	return s.Service.Indicadores(ctx)
}
