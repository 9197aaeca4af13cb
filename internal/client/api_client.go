package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ouvidoria/internal/domain/entities"
	"ouvidoria/internal/logging"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultTimeout = 10 * time.Second

// APIClient calls the REST API under baseURL (e.g. http://localhost:8080/api).
type APIClient struct {
	baseURL string
	http    *http.Client
	now     func() time.Time
}

var _ Service = (*APIClient)(nil)

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

type criarResponse struct {
	Protocolo    string                `json:"protocolo"`
	Manifestacao entities.Manifestacao `json:"manifestacao"`
}

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func (c *APIClient) Criar(ctx context.Context, nova entities.NovaManifestacao) (entities.Manifestacao, error) {
	var out criarResponse
	if err := c.do(ctx, http.MethodPost, "/manifestacoes", nil, nova, &out); err != nil {
		return entities.Manifestacao{}, err
	}
	if out.Manifestacao.Protocolo == "" {
		out.Manifestacao.Protocolo = out.Protocolo
	}
	return out.Manifestacao, nil
}

func (c *APIClient) BuscarPorProtocolo(ctx context.Context, protocolo string) (entities.Manifestacao, error) {
	var out entities.Manifestacao
	p := url.PathEscape(entities.NormalizeProtocolo(protocolo))
	if err := c.do(ctx, http.MethodGet, "/manifestacoes/"+p, nil, nil, &out); err != nil {
		return entities.Manifestacao{}, err
	}
	return out, nil
}

func (c *APIClient) Listar(ctx context.Context, f entities.Filtros) (entities.ListResult, error) {
	var out entities.ListResult
	if err := c.do(ctx, http.MethodGet, "/manifestacoes", listQuery(f), nil, &out); err != nil {
		return entities.ListResult{}, err
	}
	if out.Items == nil {
		out.Items = []entities.Manifestacao{}
	}
	return out, nil
}

func (c *APIClient) AtualizarStatus(ctx context.Context, id string, upd entities.AtualizarStatus) (entities.Manifestacao, error) {
	var out entities.Manifestacao
	if err := c.do(ctx, http.MethodPatch, "/manifestacoes/"+url.PathEscape(id)+"/status", nil, upd, &out); err != nil {
		return entities.Manifestacao{}, err
	}
	return out, nil
}

// Indicadores uses the aggregate endpoint. Servers without it (404/405) are served by
// counting through filtered list calls issued in parallel.
func (c *APIClient) Indicadores(ctx context.Context) (entities.Indicadores, error) {
	var out entities.Indicadores
	err := c.do(ctx, http.MethodGet, "/manifestacoes/indicadores", nil, nil, &out)
	if err == nil {
		if out.PorTipo == nil {
			out.PorTipo = entities.NewIndicadores().PorTipo
		}
		return out, nil
	}
	var apiErr *APIError
	if !errors.Is(err, ErrNotFound) && !(errors.As(err, &apiErr) && apiErr.Status == http.StatusMethodNotAllowed) {
		return entities.Indicadores{}, err
	}
	logging.L().Debug("[client][api] indicadores endpoint missing, counting by status")
	return c.indicadoresPorContagem(ctx)
}

func (c *APIClient) indicadoresPorContagem(ctx context.Context) (entities.Indicadores, error) {
	ind := entities.NewIndicadores()
	statusTotals := make([]int, len(entities.Statuses))
	tipoTotals := make([]int, len(entities.Tipos))
	var hoje int

	count := func(ctx context.Context, f entities.Filtros, dst *int) error {
		f.Page, f.Limit = 1, 1
		res, err := c.Listar(ctx, f)
		if err != nil {
			return err
		}
		*dst = res.Total
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range entities.Statuses {
		g.Go(func() error { return count(gctx, entities.Filtros{Status: s}, &statusTotals[i]) })
	}
	for i, t := range entities.Tipos {
		g.Go(func() error { return count(gctx, entities.Filtros{Tipo: t}, &tipoTotals[i]) })
	}
	start, end := entities.DayBounds(c.now())
	g.Go(func() error { return count(gctx, entities.Filtros{DataInicio: &start, DataFim: &end}, &hoje) })
	if err := g.Wait(); err != nil {
		return entities.Indicadores{}, err
	}

	for i, s := range entities.Statuses {
		ind.CountStatus(s, statusTotals[i])
		ind.Total += statusTotals[i]
	}
	for i, t := range entities.Tipos {
		ind.PorTipo[t] = tipoTotals[i]
	}
	ind.Hoje = hoje
	return ind, nil
}

func listQuery(f entities.Filtros) url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Tipo != "" {
		q.Set("tipo", string(f.Tipo))
	}
	if f.Email != "" {
		q.Set("email", f.Email)
	}
	if f.Protocolo != "" {
		q.Set("protocolo", f.Protocolo)
	}
	if f.DataInicio != nil {
		q.Set("dataInicio", f.DataInicio.Format(time.RFC3339Nano))
	}
	if f.DataFim != nil {
		q.Set("dataFim", f.DataFim.Format(time.RFC3339Nano))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	q.Set("limit", strconv.Itoa(max(f.Limit, 0)))
	return q
}

func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logging.L().Debug("[client][api] request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadGateway,
		resp.StatusCode == http.StatusServiceUnavailable,
		resp.StatusCode == http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status %d", ErrBackendUnavailable, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && (eb.Code != "" || eb.Message != "") {
			apiErr.Code, apiErr.Message, apiErr.Fields = eb.Code, eb.Message, eb.Fields
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
