package response

import (
	"encoding/json"
	"testing"
	"time"

	"ouvidoria/internal/domain/entities"
)

func TestFromManifestacao(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	m := entities.Manifestacao{
		ID:          "1",
		Protocolo:   "2024000001",
		Nome:        "João Silva",
		Tipo:        entities.TipoReclamacao,
		Status:      entities.StatusEmAnalise,
		DataCriacao: now,
	}

	res := FromManifestacao(m)
	if res.ProtocoloFormatado != "2024-000001" {
		t.Fatalf("unexpected formatted protocol: %q", res.ProtocoloFormatado)
	}
	if res.Tipo != "RECLAMACAO" || res.TipoLabel != "Reclamação" {
		t.Fatalf("unexpected tipo fields: %+v", res)
	}
	if res.Status != "EM_ANALISE" || res.StatusLabel != entities.StatusEmAnalise.Label() {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if !res.DataCriacao.Equal(now) || res.DataAtualizacao != nil {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromCriada(t *testing.T) {
	res := FromCriada(entities.Manifestacao{ID: "x", Protocolo: "2024123456"})
	if res.Protocolo != "2024123456" || res.Manifestacao.ID != "x" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromListResult_EmptyItemsEncodeAsArray(t *testing.T) {
	res := FromListResult(entities.ListResult{Page: 1, Limit: 10, TotalPages: 1})
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["items"].([]any); !ok {
		t.Fatalf("expected items to be an array, got %s", b)
	}
}
