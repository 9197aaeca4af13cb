package response

import (
	"ouvidoria/internal/domain/entities"
	"time"
)

type ManifestacaoResponse struct {
	ID                 string     `json:"id"`
	Protocolo          string     `json:"protocolo"`
	ProtocoloFormatado string     `json:"protocoloFormatado"`
	Nome               string     `json:"nome"`
	Email              string     `json:"email"`
	Telefone           string     `json:"telefone"`
	Tipo               string     `json:"tipo"`
	TipoLabel          string     `json:"tipoLabel"`
	Status             string     `json:"status"`
	StatusLabel        string     `json:"statusLabel"`
	Assunto            string     `json:"assunto,omitempty"`
	Descricao          string     `json:"descricao"`
	Endereco           string     `json:"endereco"`
	Observacoes        string     `json:"observacoes,omitempty"`
	DataCriacao        time.Time  `json:"dataCriacao"`
	DataAtualizacao    *time.Time `json:"dataAtualizacao,omitempty"`
}

func FromManifestacao(m entities.Manifestacao) ManifestacaoResponse {
	return ManifestacaoResponse{
		ID:                 m.ID,
		Protocolo:          m.Protocolo,
		ProtocoloFormatado: entities.FormatProtocolo(m.Protocolo),
		Nome:               m.Nome,
		Email:              m.Email,
		Telefone:           m.Telefone,
		Tipo:               string(m.Tipo),
		TipoLabel:          m.Tipo.Label(),
		Status:             string(m.Status),
		StatusLabel:        m.Status.Label(),
		Assunto:            m.Assunto,
		Descricao:          m.Descricao,
		Endereco:           m.Endereco,
		Observacoes:        m.Observacoes,
		DataCriacao:        m.DataCriacao,
		DataAtualizacao:    m.DataAtualizacao,
	}
}

// CriarManifestacaoResponse is returned by the submission endpoint.
type CriarManifestacaoResponse struct {
	Protocolo    string               `json:"protocolo"`
	Manifestacao ManifestacaoResponse `json:"manifestacao"`
}

func FromCriada(m entities.Manifestacao) CriarManifestacaoResponse {
	return CriarManifestacaoResponse{Protocolo: m.Protocolo, Manifestacao: FromManifestacao(m)}
}

type ListManifestacoesResponse struct {
	Items      []ManifestacaoResponse `json:"items"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"totalPages"`
}

func FromListResult(r entities.ListResult) ListManifestacoesResponse {
	items := make([]ManifestacaoResponse, 0, len(r.Items))
	for _, m := range r.Items {
		items = append(items, FromManifestacao(m))
	}
	return ListManifestacoesResponse{
		Items:      items,
		Total:      r.Total,
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
	}
}
