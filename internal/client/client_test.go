package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"ouvidoria/internal/adapter/http/routes"
	"ouvidoria/internal/adapter/persistence/repository"
	"ouvidoria/internal/config"
	"ouvidoria/internal/domain/entities"
	"ouvidoria/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := repository.NewManifestacaoMemoryRepository(repository.DemoSeed()...)
	uc := usecase.NewManifestacaoUseCase(repo, usecase.WithClock(func() time.Time { return fixedNow }))
	srv := httptest.NewServer(routes.NewRouter(&config.Config{CORSAllowedOrigins: []string{"*"}}, uc, nil))
	t.Cleanup(srv.Close)
	return srv
}

func novaValida() entities.NovaManifestacao {
	return entities.NovaManifestacao{
		Nome:      "Carlos Lima",
		Email:     "carlos@exemplo.com",
		Telefone:  "(31) 98888-7777",
		Tipo:      entities.TipoDenuncia,
		Descricao: "Descarte irregular de entulho no terreno baldio.",
		Endereco:  "Rua do Campo, 45, Vila Nova",
	}
}

func TestAPIClient_AgainstServer(t *testing.T) {
	srv := newAPIServer(t)
	c := NewAPIClient(srv.URL+"/api/", time.Second)
	ctx := context.Background()

	created, err := c.Criar(ctx, novaValida())
	require.NoError(t, err)
	assert.True(t, entities.IsValidProtocolo(created.Protocolo), created.Protocolo)
	assert.Equal(t, entities.StatusAberta, created.Status)

	got, err := c.BuscarPorProtocolo(ctx, entities.FormatProtocolo(created.Protocolo))
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = c.BuscarPorProtocolo(ctx, "2099000000")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := c.Listar(ctx, entities.Filtros{})
	require.NoError(t, err)
	assert.Equal(t, 6, all.Total)
	assert.Len(t, all.Items, 6)

	page, err := c.Listar(ctx, entities.Filtros{Page: 2, Limit: 4})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.TotalPages)

	upd, err := c.AtualizarStatus(ctx, "2", entities.AtualizarStatus{Status: entities.StatusResolvida, Observacoes: "Concluído"})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusResolvida, upd.Status)
	require.NotNil(t, upd.DataAtualizacao)

	ind, err := c.Indicadores(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, ind.Total)
	assert.Len(t, ind.PorTipo, len(entities.Tipos))

	_, err = c.AtualizarStatus(ctx, "2", entities.AtualizarStatus{Status: "PENDENTE"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "VALIDATION_FAILED", apiErr.Code)
}

func TestAPIClient_IndicadoresByCounting(t *testing.T) {
	var listCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/manifestacoes/indicadores" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		listCalls.Add(1)
		q := r.URL.Query()
		total := 0
		switch {
		case q.Get("status") == "ABERTA":
			total = 3
		case q.Get("status") == "RESOLVIDA":
			total = 2
		case q.Get("tipo") == "ELOGIO":
			total = 5
		case q.Get("dataInicio") != "":
			total = 1
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[],"total":` + strconv.Itoa(total) + `,"page":1,"limit":1,"totalPages":1}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL+"/api", time.Second)
	ind, err := c.Indicadores(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, ind.Abertas)
	assert.Equal(t, 2, ind.Resolvidas)
	assert.Equal(t, 5, ind.Total)
	assert.Equal(t, 5, ind.PorTipo[entities.TipoElogio])
	assert.Equal(t, 0, ind.PorTipo[entities.TipoDenuncia])
	assert.Equal(t, 1, ind.Hoje)
	assert.Equal(t, int32(len(entities.Statuses)+len(entities.Tipos)+1), listCalls.Load())
}

func TestAPIClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewAPIClient(url+"/api", time.Second).Indicadores(context.Background())
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer gateway.Close()
	_, err = NewAPIClient(gateway.URL+"/api", time.Second).Listar(context.Background(), entities.Filtros{})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestMockService(t *testing.T) {
	m := NewMockService(Latency{}, usecase.WithClock(func() time.Time { return fixedNow }))
	ctx := context.Background()

	created, err := m.Criar(ctx, novaValida())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.Protocolo, "2024"))
	assert.True(t, entities.IsValidProtocolo(created.Protocolo))

	_, err = m.BuscarPorProtocolo(ctx, "2024999999")
	assert.ErrorIs(t, err, ErrNotFound)

	before, err := m.Listar(ctx, entities.Filtros{})
	require.NoError(t, err)

	upd, err := m.AtualizarStatus(ctx, "3", entities.AtualizarStatus{Status: entities.StatusArquivada})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusArquivada, upd.Status)
	require.NotNil(t, upd.DataAtualizacao)
	assert.True(t, upd.DataAtualizacao.Equal(fixedNow))

	after, err := m.Listar(ctx, entities.Filtros{})
	require.NoError(t, err)
	require.Equal(t, before.Total, after.Total)
	for i := range after.Items {
		if after.Items[i].ID == "3" {
			continue
		}
		assert.Equal(t, before.Items[i], after.Items[i], "only the target record may change")
	}

	_, err = m.AtualizarStatus(ctx, "nao-existe", entities.AtualizarStatus{Status: entities.StatusAberta})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Listar(ctx, entities.Filtros{Status: "X"})
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestMockService_LatencyHonorsContext(t *testing.T) {
	m := NewMockService(Latency{Indicadores: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := m.Indicadores(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type stubService struct {
	Service
	err   error
	calls atomic.Int32
}

func (s *stubService) Indicadores(context.Context) (entities.Indicadores, error) {
	s.calls.Add(1)
	if s.err != nil {
		return entities.Indicadores{}, s.err
	}
	return entities.NewIndicadores(), nil
}

func TestFallbackService(t *testing.T) {
	t.Run("switches once on unavailable backend", func(t *testing.T) {
		primary := &stubService{err: errors.Join(ErrBackendUnavailable, errors.New("dial tcp: refused"))}
		demo := &stubService{}
		f := NewFallbackService(primary, demo)
		var switches atomic.Int32
		f.OnSwitch(func(error) { switches.Add(1) })

		for i := 0; i < 3; i++ {
			_, err := f.Indicadores(context.Background())
			require.NoError(t, err)
		}
		assert.True(t, f.DemoMode())
		assert.Equal(t, int32(1), primary.calls.Load(), "demo mode is sticky")
		assert.Equal(t, int32(3), demo.calls.Load())
		assert.Equal(t, int32(1), switches.Load())
	})

	t.Run("other errors surface", func(t *testing.T) {
		primary := &stubService{err: &APIError{Status: http.StatusInternalServerError, Message: "boom"}}
		demo := &stubService{}
		f := NewFallbackService(primary, demo)

		_, err := f.Indicadores(context.Background())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.False(t, f.DemoMode())
		assert.Equal(t, int32(0), demo.calls.Load())
	})

	t.Run("against a stopped API", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		f := NewFallbackService(NewAPIClient(url+"/api", time.Second), NewMockService(Latency{}))
		m, err := f.BuscarPorProtocolo(context.Background(), "2024-000001")
		require.NoError(t, err)
		assert.Equal(t, "1", m.ID)
		assert.True(t, f.DemoMode())
	})
}
