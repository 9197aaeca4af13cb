package entities

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidTipo   = errors.New("invalid tipo")
	ErrInvalidStatus = errors.New("invalid status")
)

// TipoManifestacao classifies the citizen request.
type TipoManifestacao string

const (
	TipoDenuncia    TipoManifestacao = "DENUNCIA"
	TipoReclamacao  TipoManifestacao = "RECLAMACAO"
	TipoSugestao    TipoManifestacao = "SUGESTAO"
	TipoElogio      TipoManifestacao = "ELOGIO"
	TipoSolicitacao TipoManifestacao = "SOLICITACAO"
	TipoInformacao  TipoManifestacao = "INFORMACAO"
)

// StatusManifestacao is the processing state. There is no enforced state machine:
// every status may be set from every other one.
type StatusManifestacao string

const (
	StatusAberta      StatusManifestacao = "ABERTA"
	StatusEmAnalise   StatusManifestacao = "EM_ANALISE"
	StatusEmAndamento StatusManifestacao = "EM_ANDAMENTO"
	StatusResolvida   StatusManifestacao = "RESOLVIDA"
	StatusCancelada   StatusManifestacao = "CANCELADA"
	StatusArquivada   StatusManifestacao = "ARQUIVADA"
)

// Tipos lists every tipo in display order.
var Tipos = []TipoManifestacao{
	TipoDenuncia, TipoReclamacao, TipoSugestao, TipoElogio, TipoSolicitacao, TipoInformacao,
}

// Statuses lists every status in display order.
var Statuses = []StatusManifestacao{
	StatusAberta, StatusEmAnalise, StatusEmAndamento, StatusResolvida, StatusCancelada, StatusArquivada,
}

var tipoLabels = map[TipoManifestacao]string{
	TipoDenuncia:    "Denúncia",
	TipoReclamacao:  "Reclamação",
	TipoSugestao:    "Sugestão",
	TipoElogio:      "Elogio",
	TipoSolicitacao: "Solicitação",
	TipoInformacao:  "Informação",
}

var tipoColors = map[TipoManifestacao]string{
	TipoDenuncia:    "#ea580c",
	TipoReclamacao:  "#dc2626",
	TipoSugestao:    "#2563eb",
	TipoElogio:      "#16a34a",
	TipoSolicitacao: "#9333ea",
	TipoInformacao:  "#4b5563",
}

var statusLabels = map[StatusManifestacao]string{
	StatusAberta:      "Aberta",
	StatusEmAnalise:   "Em Análise",
	StatusEmAndamento: "Em Andamento",
	StatusResolvida:   "Resolvida",
	StatusCancelada:   "Cancelada",
	StatusArquivada:   "Arquivada",
}

// Badge classes group statuses into four visual families.
const (
	BadgePending    = "badge-pending"
	BadgeInProgress = "badge-in-progress"
	BadgeResolved   = "badge-resolved"
	BadgeRejected   = "badge-rejected"
)

var statusBadges = map[StatusManifestacao]string{
	StatusAberta:      BadgePending,
	StatusEmAnalise:   BadgeInProgress,
	StatusEmAndamento: BadgeInProgress,
	StatusResolvida:   BadgeResolved,
	StatusCancelada:   BadgeRejected,
	StatusArquivada:   BadgeRejected,
}

var badgeColors = map[string]string{
	BadgePending:    "#f59e0b",
	BadgeInProgress: "#3b82f6",
	BadgeResolved:   "#22c55e",
	BadgeRejected:   "#ef4444",
}

// legacy spellings found in older clients
var statusAliases = map[string]StatusManifestacao{
	"resolvido": StatusResolvida,
	"aberto":    StatusAberta,
	"cancelado": StatusCancelada,
	"arquivado": StatusArquivada,
}

func (t TipoManifestacao) IsValid() bool {
	_, ok := tipoLabels[t]
	return ok
}

func (t TipoManifestacao) Label() string {
	if l, ok := tipoLabels[t]; ok {
		return l
	}
	return string(t)
}

// Color is the hex colour used for the tipo in charts and tables.
func (t TipoManifestacao) Color() string {
	if c, ok := tipoColors[t]; ok {
		return c
	}
	return "#6b7280"
}

func (s StatusManifestacao) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s StatusManifestacao) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s StatusManifestacao) BadgeClass() string {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return BadgePending
}

// Color is the hex colour of the status badge.
func (s StatusManifestacao) Color() string {
	return badgeColors[s.BadgeClass()]
}

// ParseTipo accepts the code ("RECLAMACAO") or the label ("Reclamação"), ignoring case
// and accents.
func ParseTipo(v string) (TipoManifestacao, error) {
	key := foldEnum(v)
	for _, t := range Tipos {
		if key == foldEnum(string(t)) || key == foldEnum(t.Label()) {
			return t, nil
		}
	}
	return "", ErrInvalidTipo
}

// ParseStatus accepts the code ("EM_ANALISE"), the label ("Em análise") or a legacy
// masculine spelling ("RESOLVIDO").
func ParseStatus(v string) (StatusManifestacao, error) {
	key := foldEnum(v)
	for _, s := range Statuses {
		if key == foldEnum(string(s)) || key == foldEnum(s.Label()) {
			return s, nil
		}
	}
	if s, ok := statusAliases[key]; ok {
		return s, nil
	}
	return "", ErrInvalidStatus
}

// Fold removes accents and lowercases, e.g. "Reclamação" -> "reclamacao".
func Fold(v string) string {
	if v == "" {
		return v
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, v)
	if err != nil {
		out = v
	}
	return strings.ToLower(out)
}

func foldEnum(v string) string {
	v = Fold(strings.TrimSpace(v))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(v)
}
