package entities

import "time"

// Manifestacao is a citizen request (complaint, suggestion, praise...) persisted by the
// ouvidoria service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (protocolo-index): protocolo
//
// Lifecycle:
//   - created by the citizen submission, always with status ABERTA
//   - mutated only through status updates (any status may follow any other)
//   - never deleted
type Manifestacao struct {
	ID              string             `json:"id"`
	Protocolo       string             `json:"protocolo"`
	Nome            string             `json:"nome"`
	Email           string             `json:"email"`
	Telefone        string             `json:"telefone"`
	Tipo            TipoManifestacao   `json:"tipo"`
	Status          StatusManifestacao `json:"status"`
	Assunto         string             `json:"assunto,omitempty"`
	Descricao       string             `json:"descricao"`
	Endereco        string             `json:"endereco"`
	Observacoes     string             `json:"observacoes,omitempty"`
	DataCriacao     time.Time          `json:"dataCriacao"`
	DataAtualizacao *time.Time         `json:"dataAtualizacao,omitempty"`
}

// NovaManifestacao is the citizen submission. Server-owned fields (id, protocol,
// status and timestamps) are not part of it.
type NovaManifestacao struct {
	Nome      string           `json:"nome"`
	Email     string           `json:"email"`
	Telefone  string           `json:"telefone"`
	Tipo      TipoManifestacao `json:"tipo"`
	Assunto   string           `json:"assunto,omitempty"`
	Descricao string           `json:"descricao"`
	Endereco  string           `json:"endereco"`
}

type AtualizarStatus struct {
	Status      StatusManifestacao `json:"status"`
	Observacoes string             `json:"observacoes,omitempty"`
}

// Filtros narrows a listing. Zero values mean "no restriction".
//
// DataFim given as a bare date (no clock component) covers the whole day.
type Filtros struct {
	Status     StatusManifestacao
	Tipo       TipoManifestacao
	Email      string
	Protocolo  string
	DataInicio *time.Time
	DataFim    *time.Time
	Page       int
	Limit      int
}

// IsEmpty reports whether no restriction is set (paging is ignored).
func (f Filtros) IsEmpty() bool {
	return f.Status == "" && f.Tipo == "" && f.Email == "" && f.Protocolo == "" &&
		f.DataInicio == nil && f.DataFim == nil
}

// ListResult is a page of manifestações.
type ListResult struct {
	Items      []Manifestacao `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}
