package entities

import (
	"strings"
	"time"
)

// Indicadores aggregates manifestações for the dashboard.
type Indicadores struct {
	Total       int                      `json:"total"`
	Abertas     int                      `json:"abertas"`
	EmAnalise   int                      `json:"emAnalise"`
	EmAndamento int                      `json:"emAndamento"`
	Resolvidas  int                      `json:"resolvidas"`
	Canceladas  int                      `json:"canceladas"`
	Arquivadas  int                      `json:"arquivadas"`
	Hoje        int                      `json:"hoje"`
	PorTipo     map[TipoManifestacao]int `json:"porTipo"`
}

// NewIndicadores returns zeroed indicators with every tipo present in PorTipo.
func NewIndicadores() Indicadores {
	porTipo := make(map[TipoManifestacao]int, len(Tipos))
	for _, t := range Tipos {
		porTipo[t] = 0
	}
	return Indicadores{PorTipo: porTipo}
}

// CountStatus adds n to the counter of status s.
func (i *Indicadores) CountStatus(s StatusManifestacao, n int) {
	switch s {
	case StatusAberta:
		i.Abertas += n
	case StatusEmAnalise:
		i.EmAnalise += n
	case StatusEmAndamento:
		i.EmAndamento += n
	case StatusResolvida:
		i.Resolvidas += n
	case StatusCancelada:
		i.Canceladas += n
	case StatusArquivada:
		i.Arquivadas += n
	}
}

// ByStatus returns the counter of status s.
func (i Indicadores) ByStatus(s StatusManifestacao) int {
	switch s {
	case StatusAberta:
		return i.Abertas
	case StatusEmAnalise:
		return i.EmAnalise
	case StatusEmAndamento:
		return i.EmAndamento
	case StatusResolvida:
		return i.Resolvidas
	case StatusCancelada:
		return i.Canceladas
	case StatusArquivada:
		return i.Arquivadas
	}
	return 0
}

// CalcularIndicadores counts ms by status and tipo. Hoje counts the records created on
// the calendar day of now, in now's location.
func CalcularIndicadores(ms []Manifestacao, now time.Time) Indicadores {
	ind := NewIndicadores()
	ind.Total = len(ms)
	for _, m := range ms {
		ind.CountStatus(m.Status, 1)
		if _, ok := ind.PorTipo[m.Tipo]; ok {
			ind.PorTipo[m.Tipo]++
		}
		if SameDay(m.DataCriacao, now) {
			ind.Hoje++
		}
	}
	return ind
}

// SameDay compares calendar days in b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Match reports whether m satisfies every restriction of f.
func (f Filtros) Match(m Manifestacao) bool {
	if f.Status != "" && m.Status != f.Status {
		return false
	}
	if f.Tipo != "" && m.Tipo != f.Tipo {
		return false
	}
	if f.Email != "" && !strings.EqualFold(strings.TrimSpace(f.Email), m.Email) {
		return false
	}
	if p := NormalizeProtocolo(f.Protocolo); p != "" && !strings.Contains(m.Protocolo, p) {
		return false
	}
	if f.DataInicio != nil && m.DataCriacao.Before(*f.DataInicio) {
		return false
	}
	if f.DataFim != nil && m.DataCriacao.After(*f.DataFim) {
		return false
	}
	return true
}
