package main

import (
	"errors"

	"ouvidoria/internal/client"
	"ouvidoria/internal/domain/entities"
	"ouvidoria/internal/logging"
	"ouvidoria/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	msgProtocoloNaoEncontrado = "Protocolo não encontrado. Verifique o número e tente novamente."
	msgErroConsulta           = "Erro ao consultar protocolo. Tente novamente."
)

func newConsultarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "consultar <protocolo>",
		Short:   "Consulta o andamento de uma manifestação pelo protocolo",
		Example: "  ouvidoria consultar 2024-000001",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if entities.NormalizeProtocolo(args[0]) == "" {
				return fail("Informe o número do protocolo.", nil)
			}
			m, err := a.svc.BuscarPorProtocolo(cmd.Context(), args[0])
			switch {
			case errors.Is(err, client.ErrNotFound):
				return fail(msgProtocoloNaoEncontrado, err)
			case err != nil:
				logging.L().Error("[cli][consultar] lookup failed", zap.String("protocolo", args[0]), zap.Error(err))
				return fail(msgErroConsulta, err)
			}
			a.print(cmd, ui.ManifestacaoCard(a.styles, m, a.loc))
			return nil
		},
	}
}
