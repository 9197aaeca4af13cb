package ui

import (
	"strconv"
	"strings"
	"time"

	"ouvidoria/internal/dashboard"
)

var painelErro = map[string]string{
	dashboard.PainelIndicadores: "Erro ao carregar indicadores",
	dashboard.PainelUltimas:     "Erro ao carregar últimas manifestações",
	dashboard.PainelSerie:       "Erro ao carregar série diária",
	dashboard.PainelSLA:         "Erro ao carregar SLA das manifestações abertas",
}

// DashboardView lays out a dashboard.Snapshot top to bottom. A failed panel is
// replaced by its error line.
func DashboardView(s Styles, snap dashboard.Snapshot, loc *time.Location) string {
	sections := []string{s.Title.Render("Dashboard da Ouvidoria")}
	erro := func(painel string) string { return s.Error.Render(painelErro[painel]) }

	if snap.Falhou(dashboard.PainelIndicadores) {
		sections = append(sections, erro(dashboard.PainelIndicadores))
	} else {
		sections = append(sections, IndicatorCards(s, snap.Indicadores))
	}

	if snap.Falhou(dashboard.PainelSerie) {
		sections = append(sections, erro(dashboard.PainelSerie))
	} else {
		serie := make([]Bar, len(snap.Serie))
		for i, p := range snap.Serie {
			serie[i] = Bar{Label: p.Dia.Format("02/01"), Value: p.Total}
		}
		sections = append(sections, BarChart(s, "Manifestações por dia (últimos "+strconv.Itoa(len(snap.Serie))+" dias)", serie))
	}

	if snap.Falhou(dashboard.PainelSLA) {
		sections = append(sections, erro(dashboard.PainelSLA))
	} else {
		sla := make([]Bar, len(snap.SLA))
		for i, b := range snap.SLA {
			sla[i] = Bar{Label: b.Label, Value: b.Total, Color: b.Color}
		}
		sections = append(sections, BarChart(s, "Manifestações abertas por tempo de espera", sla))
	}

	if len(snap.Tipos) > 0 {
		tipos := make([]Bar, len(snap.Tipos))
		for i, t := range snap.Tipos {
			tipos[i] = Bar{Label: t.Label, Value: t.Total, Color: t.Color}
		}
		sections = append(sections, BarChart(s, "Distribuição por tipo", tipos))
	}

	sections = append(sections, s.Subtitle.Render("Últimas manifestações"))
	if snap.Falhou(dashboard.PainelUltimas) {
		sections = append(sections, erro(dashboard.PainelUltimas))
	} else {
		sections = append(sections, ManifestacoesTable(s, snap.Ultimas, loc))
	}
	sections = append(sections, s.Muted.Render("Atualizado em "+FormatData(snap.AtualizadoEm, loc)))
	return strings.Join(sections, "\n")
}
