// Package dashboard assembles the staff dashboard from a client.Service: indicator
// cards, a daily series, SLA buckets for open records, the tipo distribution and the
// latest records.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ouvidoria/internal/client"
	"ouvidoria/internal/domain/entities"
	"ouvidoria/internal/logging"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultUltimas  = 10
	DefaultSerieDia = 30
	// maxParallel bounds the per-day list calls of SerieDiaria.
	maxParallel = 6
)

// PontoDiario is the number of records created on Dia.
type PontoDiario struct {
	Dia   time.Time
	Total int
}

type SlaBucket struct {
	Label string
	Color string
	Total int
}

type FatiaTipo struct {
	Tipo  entities.TipoManifestacao
	Label string
	Color string
	Total int
}

// Panel names used as keys of Snapshot.Erros.
const (
	PainelIndicadores = "indicadores"
	PainelUltimas     = "ultimas"
	PainelSerie       = "serie"
	PainelSLA         = "sla"
)

// Snapshot is one full load of the dashboard. A panel whose load failed is left at its
// zero value and its error is kept in Erros under the panel name.
type Snapshot struct {
	Indicadores  entities.Indicadores
	Ultimas      []entities.Manifestacao
	Serie        []PontoDiario
	SLA          []SlaBucket
	Tipos        []FatiaTipo
	Erros        map[string]error
	AtualizadoEm time.Time
}

// Falhou reports whether the named panel failed to load.
func (s Snapshot) Falhou(painel string) bool {
	_, ok := s.Erros[painel]
	return ok
}

// Err joins the panel errors, or nil when every panel loaded.
func (s Snapshot) Err() error {
	if len(s.Erros) == 0 {
		return nil
	}
	errs := make([]error, 0, len(s.Erros))
	for _, p := range paineis {
		if err, ok := s.Erros[p]; ok {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var paineis = []string{PainelIndicadores, PainelUltimas, PainelSerie, PainelSLA}

type Dashboard struct {
	svc  client.Service
	now  func() time.Time
	days int
	last int
}

type Option func(*Dashboard)

func WithClock(now func() time.Time) Option { return func(d *Dashboard) { d.now = now } }

// WithSerieDias changes the length of the daily series.
func WithSerieDias(days int) Option { return func(d *Dashboard) { d.days = days } }

func New(svc client.Service, opts ...Option) *Dashboard {
	d := &Dashboard{svc: svc, now: time.Now, days: DefaultSerieDia, last: DefaultUltimas}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Carregar loads the indicators first and, once they are in, the remaining panels in
// parallel. Panels fail independently: the snapshot keeps what loaded and records each
// failure in Erros. The returned error is only set when the context is done.
func (d *Dashboard) Carregar(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{Erros: map[string]error{}, Tipos: []FatiaTipo{}}
	var mu sync.Mutex
	falha := func(painel string, err error) {
		logging.L().Error("[dashboard] panel failed", zap.String("panel", painel), zap.Error(err))
		mu.Lock()
		snap.Erros[painel] = err
		mu.Unlock()
	}

	ind, err := d.svc.Indicadores(ctx)
	if err != nil {
		falha(PainelIndicadores, fmt.Errorf("indicadores: %w", err))
	} else {
		snap.Indicadores = ind
		snap.Tipos = DistribuicaoTipos(ind)
	}

	var g errgroup.Group
	g.Go(func() error {
		ultimas, err := d.UltimasManifestacoes(ctx, d.last)
		if err != nil {
			falha(PainelUltimas, err)
			return nil
		}
		snap.Ultimas = ultimas
		return nil
	})
	g.Go(func() error {
		serie, err := d.SerieDiaria(ctx, d.days)
		if err != nil {
			falha(PainelSerie, err)
			return nil
		}
		snap.Serie = serie
		return nil
	})
	g.Go(func() error {
		sla, err := d.SlaBuckets(ctx)
		if err != nil {
			falha(PainelSLA, err)
			return nil
		}
		snap.SLA = sla
		return nil
	})
	_ = g.Wait()

	snap.AtualizadoEm = d.now()
	return snap, ctx.Err()
}

// UltimasManifestacoes returns the n most recent records.
func (d *Dashboard) UltimasManifestacoes(ctx context.Context, n int) ([]entities.Manifestacao, error) {
	if n <= 0 {
		n = DefaultUltimas
	}
	res, err := d.svc.Listar(ctx, entities.Filtros{Page: 1, Limit: n})
	if err != nil {
		return nil, fmt.Errorf("ultimas: %w", err)
	}
	return res.Items, nil
}

// SerieDiaria counts the records created on each of the last days days, today
// included, oldest first. Each day is one list call bounded to that calendar day.
func (d *Dashboard) SerieDiaria(ctx context.Context, days int) ([]PontoDiario, error) {
	if days <= 0 {
		days = DefaultSerieDia
	}
	today := d.now()
	serie := make([]PontoDiario, days)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i := range serie {
		start, end := entities.DayBounds(today.AddDate(0, 0, i-(days-1)))
		serie[i].Dia = start
		g.Go(func() error {
			res, err := d.svc.Listar(gctx, entities.Filtros{DataInicio: &start, DataFim: &end, Page: 1, Limit: 1})
			if err != nil {
				return fmt.Errorf("serie %s: %w", start.Format("2006-01-02"), err)
			}
			serie[i].Total = res.Total
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return serie, nil
}

// SlaBuckets groups the ABERTA records by how long they have been open.
func (d *Dashboard) SlaBuckets(ctx context.Context) ([]SlaBucket, error) {
	res, err := d.svc.Listar(ctx, entities.Filtros{Status: entities.StatusAberta, Limit: 0})
	if err != nil {
		return nil, fmt.Errorf("sla: %w", err)
	}
	return CalcularSla(res.Items, d.now()), nil
}

// slaLimits holds the inclusive upper bound, in whole days, of every bucket but the last.
var slaLimits = []struct {
	maxDias int
	label   string
	color   string
}{
	{2, "0-2 dias", "#28a745"},
	{7, "3-7 dias", "#ffc107"},
	{14, "8-14 dias", "#fd7e14"},
}

const (
	slaOverLabel = ">14 dias"
	slaOverColor = "#dc3545"
)

// CalcularSla buckets ms by whole days open, floor((now - criação) / 24h). Every
// bucket is always present, in ascending age order.
func CalcularSla(ms []entities.Manifestacao, now time.Time) []SlaBucket {
	buckets := make([]SlaBucket, 0, len(slaLimits)+1)
	for _, l := range slaLimits {
		buckets = append(buckets, SlaBucket{Label: l.label, Color: l.color})
	}
	buckets = append(buckets, SlaBucket{Label: slaOverLabel, Color: slaOverColor})

	for _, m := range ms {
		buckets[slaIndex(DiasEmAberto(m, now))].Total++
	}
	return buckets
}

// DiasEmAberto is the number of whole days since m was created. Future dates count as 0.
func DiasEmAberto(m entities.Manifestacao, now time.Time) int {
	d := int(now.Sub(m.DataCriacao) / (24 * time.Hour))
	if d < 0 {
		return 0
	}
	return d
}

func slaIndex(dias int) int {
	for i, l := range slaLimits {
		if dias <= l.maxDias {
			return i
		}
	}
	return len(slaLimits)
}

// DistribuicaoTipos lists the tipos with at least one record, in display order.
func DistribuicaoTipos(ind entities.Indicadores) []FatiaTipo {
	out := []FatiaTipo{}
	for _, t := range entities.Tipos {
		if n := ind.PorTipo[t]; n > 0 {
			out = append(out, FatiaTipo{Tipo: t, Label: t.Label(), Color: t.Color(), Total: n})
		}
	}
	return out
}
