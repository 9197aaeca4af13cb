package entities

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"
)

func TestFormatProtocolo(t *testing.T) {
	cases := map[string]string{
		"2024000001":       "2024-000001",
		"PROT2024000001":   "PROT2024-000001",
		"123":              "123",
		"":                 "",
		"20240000012024000002": "2024-0000012024000002",
	}
	for in, want := range cases {
		if got := FormatProtocolo(in); got != want {
			t.Errorf("FormatProtocolo(%q) = %q; expected %q", in, got, want)
		}
	}
}

func TestNormalizeProtocolo(t *testing.T) {
	if got := NormalizeProtocolo(" 2024-000001 "); got != "2024000001" {
		t.Fatalf("unexpected normalized protocol %q", got)
	}
}

func TestNewProtocolo(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		p := NewProtocolo(now, r)
		if !IsValidProtocolo(p) {
			t.Fatalf("malformed protocol %q", p)
		}
		if !strings.HasPrefix(p, "2025") {
			t.Fatalf("expected year prefix, got %q", p)
		}
	}
}

func TestEnumLabelsAndColorsAreComplete(t *testing.T) {
	for _, s := range Statuses {
		if !s.IsValid() {
			t.Errorf("status %s not valid", s)
		}
		if s.Label() == string(s) || s.Label() == "" {
			t.Errorf("status %s has no label", s)
		}
		if _, ok := statusBadges[s]; !ok {
			t.Errorf("status %s has no badge", s)
		}
		if s.Color() == "" {
			t.Errorf("status %s has no color", s)
		}
	}
	for _, tp := range Tipos {
		if tp.Label() == string(tp) || tp.Label() == "" {
			t.Errorf("tipo %s has no label", tp)
		}
		if _, ok := tipoColors[tp]; !ok {
			t.Errorf("tipo %s has no color", tp)
		}
	}
	if len(statusLabels) != len(Statuses) || len(tipoLabels) != len(Tipos) {
		t.Fatalf("label tables out of sync with enum lists")
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected StatusManifestacao
		wantErr  bool
	}{
		{"EM_ANALISE", StatusEmAnalise, false},
		{"em análise", StatusEmAnalise, false},
		{"Em Andamento", StatusEmAndamento, false},
		{"RESOLVIDO", StatusResolvida, false},
		{"resolvida", StatusResolvida, false},
		{"FECHADA", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		if (err != nil) != tt.wantErr || got != tt.expected {
			t.Errorf("ParseStatus(%q) = %q, %v", tt.input, got, err)
		}
	}
}

func TestParseTipo(t *testing.T) {
	tests := []struct {
		input    string
		expected TipoManifestacao
	}{
		{"RECLAMACAO", TipoReclamacao},
		{"Reclamação", TipoReclamacao},
		{"denúncia", TipoDenuncia},
		{"informacao", TipoInformacao},
	}
	for _, tt := range tests {
		got, err := ParseTipo(tt.input)
		if err != nil || got != tt.expected {
			t.Errorf("ParseTipo(%q) = %q, %v", tt.input, got, err)
		}
	}
	if _, err := ParseTipo("ODIO"); err != ErrInvalidTipo {
		t.Fatalf("expected ErrInvalidTipo, got %v", err)
	}
}

func TestCalcularIndicadores(t *testing.T) {
	now := time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)
	ms := []Manifestacao{
		{Tipo: TipoReclamacao, Status: StatusAberta, DataCriacao: now.Add(-2 * time.Hour)},
		{Tipo: TipoSugestao, Status: StatusEmAnalise, DataCriacao: now.AddDate(0, 0, -1)},
		{Tipo: TipoReclamacao, Status: StatusResolvida, DataCriacao: now.AddDate(0, 0, -2)},
		{Tipo: TipoElogio, Status: StatusArquivada, DataCriacao: now.Add(-17 * time.Hour)},
	}
	ind := CalcularIndicadores(ms, now)
	if ind.Total != 4 || ind.Abertas != 1 || ind.EmAnalise != 1 || ind.Resolvidas != 1 || ind.Arquivadas != 1 {
		t.Fatalf("unexpected status counts: %+v", ind)
	}
	if ind.Hoje != 2 {
		t.Fatalf("expected 2 today, got %d", ind.Hoje)
	}
	if len(ind.PorTipo) != len(Tipos) {
		t.Fatalf("expected every tipo key, got %v", ind.PorTipo)
	}
	if ind.PorTipo[TipoReclamacao] != 2 || ind.PorTipo[TipoInformacao] != 0 {
		t.Fatalf("unexpected tipo counts: %v", ind.PorTipo)
	}
	if ind.ByStatus(StatusAberta) != 1 {
		t.Fatalf("ByStatus mismatch")
	}
}

func TestFiltrosMatch(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	m := Manifestacao{Protocolo: "2024000001", Email: "joao@email.com", Tipo: TipoReclamacao, Status: StatusAberta, DataCriacao: created}

	inicio, _ := ParseDataFiltro("2024-01-15", false, time.UTC)
	fim, _ := ParseDataFiltro("2024-01-15", true, time.UTC)
	antes, _ := ParseDataFiltro("2024-01-14", true, time.UTC)

	tests := []struct {
		name string
		f    Filtros
		want bool
	}{
		{"empty", Filtros{}, true},
		{"status", Filtros{Status: StatusAberta}, true},
		{"other status", Filtros{Status: StatusResolvida}, false},
		{"tipo", Filtros{Tipo: TipoElogio}, false},
		{"email case", Filtros{Email: "JOAO@email.com"}, true},
		{"protocol substring", Filtros{Protocolo: "000001"}, true},
		{"protocol display form", Filtros{Protocolo: "2024-000001"}, true},
		{"protocol miss", Filtros{Protocolo: "999"}, false},
		{"same day range", Filtros{DataInicio: inicio, DataFim: fim}, true},
		{"ends before", Filtros{DataFim: antes}, false},
	}
	for _, tt := range tests {
		if got := tt.f.Match(m); got != tt.want {
			t.Errorf("%s: Match = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestParseDataFiltro(t *testing.T) {
	if d, err := ParseDataFiltro("", false, nil); d != nil || err != nil {
		t.Fatalf("expected nil for empty input")
	}
	if _, err := ParseDataFiltro("15/01/2024", false, time.UTC); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	d, err := ParseDataFiltro("2024-01-15T10:00:00Z", true, time.UTC)
	if err != nil || d.Hour() != 10 {
		t.Fatalf("unexpected RFC3339 parse: %v %v", d, err)
	}
}

func TestPaginate(t *testing.T) {
	ms := make([]Manifestacao, 23)
	res := Paginate(ms, 3, 10)
	if res.Total != 23 || res.TotalPages != 3 || len(res.Items) != 3 || res.Page != 3 {
		t.Fatalf("unexpected page: %+v", res)
	}
	res = Paginate(ms, 9, 10)
	if len(res.Items) != 0 {
		t.Fatalf("expected empty page past the end")
	}
	res = Paginate(nil, 1, 0)
	if res.Items == nil || res.TotalPages != 1 {
		t.Fatalf("expected empty non-nil single page: %+v", res)
	}
}
