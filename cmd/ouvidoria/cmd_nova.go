package main

import (
	"sort"
	"strings"

	"ouvidoria/internal/adapter/http/dto/request"
	"ouvidoria/internal/logging"
	"ouvidoria/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newNovaCmd(a *app) *cobra.Command {
	var req request.ManifestacaoRequest

	cmd := &cobra.Command{
		Use:   "nova",
		Short: "Registra uma nova manifestação",
		Example: `  ouvidoria nova --nome "Ana Souza" --email ana@exemplo.com --telefone "(21) 99876-5432" \
    --tipo sugestao --endereco "Praça Central, s/n, Centro" \
    --descricao "Instalar mais bancos na praça central do bairro."`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fields := req.Validate(); fields != nil {
				return fail("Verifique os campos:\n"+formatFields(fields), nil)
			}
			nova, err := req.ToEntity()
			if err != nil {
				return fail("Tipo inválido", err)
			}

			m, err := a.svc.Criar(cmd.Context(), nova)
			if err != nil {
				logging.L().Error("[cli][nova] submission failed", zap.Error(err))
				return fail("Erro ao enviar manifestação. Tente novamente.", err)
			}
			a.print(cmd, ui.ProtocoloCriado(a.styles, m))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Nome, "nome", "", "Nome completo")
	f.StringVar(&req.Email, "email", "", "E-mail para contato")
	f.StringVar(&req.Telefone, "telefone", "", "Telefone, ex. (11) 99999-9999")
	f.StringVar(&req.Tipo, "tipo", "", "denuncia, reclamacao, sugestao, elogio, solicitacao ou informacao")
	f.StringVar(&req.Assunto, "assunto", "", "Assunto (opcional)")
	f.StringVar(&req.Endereco, "endereco", "", "Endereço da ocorrência")
	f.StringVar(&req.Descricao, "descricao", "", "Descrição detalhada (20 a 1000 caracteres)")
	return cmd
}

// formatFields lists field messages in a stable order.
func formatFields(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	lines := make([]string, len(names))
	for i, k := range names {
		lines[i] = "  - " + fields[k]
	}
	return strings.Join(lines, "\n")
}
