package ui

import (
	"strconv"
	"strings"
	"time"

	"ouvidoria/internal/domain/entities"

	"github.com/charmbracelet/lipgloss"
)

const (
	DemoBannerText = "Modo Demonstração — usando dados de exemplo"
	dataHora       = "02/01/2006 15:04"
	barWidth       = 30
)

func DemoBanner(s Styles) string {
	return s.Banner.Render(DemoBannerText)
}

// StatusBadge colours the status label by its badge family.
func StatusBadge(s Styles, st entities.StatusManifestacao) string {
	return s.Badge.Background(lipgloss.Color(st.Color())).Render(st.Label())
}

func TipoTag(t entities.TipoManifestacao) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color())).Render(t.Label())
}

// FormatData renders t in pt-BR order in loc; a nil loc keeps t's own location.
func FormatData(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(dataHora)
}

// ManifestacaoCard is the citizen's view of a single record.
func ManifestacaoCard(s Styles, m entities.Manifestacao, loc *time.Location) string {
	rows := [][2]string{
		{"Protocolo", entities.FormatProtocolo(m.Protocolo)},
		{"Status", StatusBadge(s, m.Status)},
		{"Tipo", TipoTag(m.Tipo)},
		{"Registrada em", FormatData(m.DataCriacao, loc)},
	}
	if m.DataAtualizacao != nil {
		rows = append(rows, [2]string{"Atualizada em", FormatData(*m.DataAtualizacao, loc)})
	}
	if m.Assunto != "" {
		rows = append(rows, [2]string{"Assunto", m.Assunto})
	}
	rows = append(rows,
		[2]string{"Endereço", m.Endereco},
		[2]string{"Descrição", m.Descricao},
	)
	if m.Observacoes != "" {
		rows = append(rows, [2]string{"Observações", m.Observacoes})
	}

	var sb strings.Builder
	for i, r := range rows {
		sb.WriteString(s.Bold.Render(r[0] + ": "))
		sb.WriteString(r[1])
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}
	return s.Card.Render(sb.String())
}

// ProtocoloCriado is shown after a successful submission.
func ProtocoloCriado(s Styles, m entities.Manifestacao) string {
	lines := []string{
		s.Success.Render("Manifestação registrada com sucesso!"),
		"",
		"Seu protocolo: " + s.Bold.Render(entities.FormatProtocolo(m.Protocolo)),
		"",
		s.Muted.Render("Guarde este número. Você pode acompanhar o andamento com:"),
		s.Muted.Render("  ouvidoria consultar " + entities.FormatProtocolo(m.Protocolo)),
		s.Muted.Render("Prazo de resposta: até 30 dias."),
	}
	return s.Card.Render(strings.Join(lines, "\n"))
}

// ManifestacoesTable is the staff listing.
func ManifestacoesTable(s Styles, items []entities.Manifestacao, loc *time.Location) string {
	t := NewTable("", "ID", "Protocolo", "Nome", "Tipo", "Status", "Data")
	for _, m := range items {
		t.AddRow(m.ID, entities.FormatProtocolo(m.Protocolo), truncate(m.Nome, 24), TipoTag(m.Tipo), StatusBadge(s, m.Status), FormatData(m.DataCriacao, loc))
	}
	return t.View(s)
}

// IndicatorCards renders the headline counters side by side.
func IndicatorCards(s Styles, ind entities.Indicadores) string {
	card := func(label string, n int, color lipgloss.Color) string {
		return s.Card.Width(16).Render(
			lipgloss.NewStyle().Foreground(color).Bold(true).Render(strconv.Itoa(n)) + "\n" + s.Muted.Render(label),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total", ind.Total, Primary),
		card("Abertas", ind.Abertas, lipgloss.Color(entities.StatusAberta.Color())),
		card("Em andamento", ind.EmAnalise+ind.EmAndamento, lipgloss.Color(entities.StatusEmAndamento.Color())),
		card("Resolvidas", ind.Resolvidas, lipgloss.Color(entities.StatusResolvida.Color())),
		card("Hoje", ind.Hoje, Muted),
	)
}

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label string
	Value int
	Color string
}

// BarChart scales every bar against the largest value. Non-zero values always get at
// least one cell.
func BarChart(s Styles, title string, bars []Bar) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(s.Subtitle.Render(title))
		sb.WriteString("\n")
	}
	labelW, maxV := 0, 0
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		maxV = max(maxV, b.Value)
	}
	for _, b := range bars {
		n := 0
		if maxV > 0 {
			n = b.Value * barWidth / maxV
			if b.Value > 0 && n == 0 {
				n = 1
			}
		}
		color := b.Color
		if color == "" {
			color = string(Primary)
		}
		sb.WriteString(b.Label)
		sb.WriteString(strings.Repeat(" ", labelW-lipgloss.Width(b.Label)))
		sb.WriteString(" ")
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", n)))
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(b.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

func truncate(v string, n int) string {
	r := []rune(v)
	if len(r) <= n {
		return v
	}
	return string(r[:n-1]) + "…"
}
