package repository

import (
	"time"

	"ouvidoria/internal/domain/entities"
)

// DemoSeed returns the demonstration records loaded by the in-memory repository.
func DemoSeed() []entities.Manifestacao {
	at := func(v string) time.Time {
		t, _ := time.Parse(time.RFC3339, v)
		return t
	}
	ptr := func(t time.Time) *time.Time { return &t }

	return []entities.Manifestacao{
		{
			ID:          "1",
			Protocolo:   "2024000001",
			Nome:        "João Silva",
			Email:       "joao@email.com",
			Telefone:    "(11) 99999-9999",
			Tipo:        entities.TipoReclamacao,
			Status:      entities.StatusAberta,
			Descricao:   "Buraco na rua principal do bairro que está causando acidentes. Já faz mais de 2 meses que foi reportado mas nada foi feito.",
			Endereco:    "Rua das Flores, 123, Centro, São Paulo",
			DataCriacao: at("2024-01-15T10:30:00Z"),
		},
		{
			ID:              "2",
			Protocolo:       "2024000002",
			Nome:            "Maria Santos",
			Email:           "maria@email.com",
			Telefone:        "(11) 88888-8888",
			Tipo:            entities.TipoSugestao,
			Status:          entities.StatusEmAnalise,
			Descricao:       "Sugestão para instalar mais lixeiras no parque municipal. O parque fica muito sujo nos fins de semana.",
			Endereco:        "Av. Paulista, 1000, Bela Vista, São Paulo",
			Observacoes:     "Sugestão válida, será analisada pela equipe de urbanismo.",
			DataCriacao:     at("2024-01-14T14:20:00Z"),
			DataAtualizacao: ptr(at("2024-01-15T09:15:00Z")),
		},
		{
			ID:              "3",
			Protocolo:       "2024000003",
			Nome:            "Pedro Costa",
			Email:           "pedro@email.com",
			Telefone:        "(11) 77777-7777",
			Tipo:            entities.TipoElogio,
			Status:          entities.StatusResolvida,
			Descricao:       "Parabéns pela rápida resposta na limpeza da praça. A equipe foi muito eficiente e atenciosa.",
			Endereco:        "Rua Augusta, 500, Consolação, São Paulo",
			Observacoes:     "Elogio registrado e encaminhado para a equipe de limpeza urbana.",
			DataCriacao:     at("2024-01-13T16:45:00Z"),
			DataAtualizacao: ptr(at("2024-01-14T11:30:00Z")),
		},
		{
			ID:              "4",
			Protocolo:       "2024000004",
			Nome:            "Ana Oliveira",
			Email:           "ana@email.com",
			Telefone:        "(11) 66666-6666",
			Tipo:            entities.TipoDenuncia,
			Status:          entities.StatusEmAnalise,
			Descricao:       "Denúncia de comércio irregular funcionando sem alvará na esquina da rua. Está causando transtorno aos moradores.",
			Endereco:        "Rua 13 de Maio, 200, Bixiga, São Paulo",
			Observacoes:     "Denúncia recebida. Fiscalização será enviada para verificar a situação.",
			DataCriacao:     at("2024-01-15T08:15:00Z"),
			DataAtualizacao: ptr(at("2024-01-15T13:45:00Z")),
		},
		{
			ID:          "5",
			Protocolo:   "2024000005",
			Nome:        "Carlos Ferreira",
			Email:       "carlos@email.com",
			Telefone:    "(11) 55555-5555",
			Tipo:        entities.TipoSolicitacao,
			Status:      entities.StatusAberta,
			Descricao:   "Solicitação de poda de árvore que está tocando nos fios elétricos. Risco de queda de galhos.",
			Endereco:    "Rua dos Pinheiros, 300, Pinheiros, São Paulo",
			DataCriacao: at("2024-01-15T12:00:00Z"),
		},
	}
}
