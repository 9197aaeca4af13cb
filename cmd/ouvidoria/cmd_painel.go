package main

import (
	"errors"
	"strconv"

	"ouvidoria/internal/adapter/http/dto/request"
	"ouvidoria/internal/client"
	"ouvidoria/internal/domain/entities"
	"ouvidoria/internal/logging"
	"ouvidoria/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPainelCmd(a *app) *cobra.Command {
	var q request.ListQuery

	cmd := &cobra.Command{
		Use:   "painel",
		Short: "Painel do atendente: lista e filtra manifestações",
		Example: `  ouvidoria painel --status aberta --page 2
  ouvidoria painel --de 2024-01-01 --ate 2024-01-31 --limit 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filtros, err := q.ToFiltros(a.loc)
			if err != nil {
				return fail("Filtro inválido: "+err.Error(), err)
			}
			res, err := a.svc.Listar(cmd.Context(), filtros)
			if err != nil {
				logging.L().Error("[cli][painel] listing failed", zap.Error(err))
				return fail("Erro ao carregar manifestações. Tente novamente.", err)
			}

			body := ui.ManifestacoesTable(a.styles, res.Items, a.loc) + "\n" +
				ui.Pagination(a.styles, res.Page, res.TotalPages, res.Limit, res.Total)
			a.print(cmd, body)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&q.Status, "status", "", "Filtra por status")
	f.StringVar(&q.Tipo, "tipo", "", "Filtra por tipo")
	f.StringVar(&q.Email, "email", "", "Filtra pelo e-mail do cidadão")
	f.StringVar(&q.Protocolo, "protocolo", "", "Trecho do protocolo")
	f.StringVar(&q.DataInicio, "de", "", "Data inicial (AAAA-MM-DD)")
	f.StringVar(&q.DataFim, "ate", "", "Data final (AAAA-MM-DD), inclusive")
	f.StringVar(&q.Page, "page", "", "Página")
	f.StringVar(&q.Limit, "limit", "", "Itens por página, 0 lista todos (padrão "+strconv.Itoa(entities.DefaultPageLimit)+")")

	cmd.AddCommand(newAtualizarCmd(a))
	return cmd
}

func newAtualizarCmd(a *app) *cobra.Command {
	var req request.AtualizarStatusRequest

	cmd := &cobra.Command{
		Use:     "atualizar <id>",
		Short:   "Altera o status de uma manifestação",
		Example: `  ouvidoria painel atualizar 1 --status em_andamento --observacoes "Equipe enviada ao local"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fields := req.Validate(); fields != nil {
				return fail("Verifique os campos:\n"+formatFields(fields), nil)
			}
			upd, err := req.ToEntity()
			if err != nil {
				return fail("Status inválido", err)
			}

			m, err := a.svc.AtualizarStatus(cmd.Context(), args[0], upd)
			switch {
			case errors.Is(err, client.ErrNotFound):
				return fail("Manifestação não encontrada.", err)
			case err != nil:
				logging.L().Error("[cli][painel] status update failed", zap.String("id", args[0]), zap.Error(err))
				return fail("Erro ao atualizar status. Tente novamente.", err)
			}
			a.print(cmd, a.styles.Success.Render("Status atualizado.")+"\n"+ui.ManifestacaoCard(a.styles, m, a.loc))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Status, "status", "", "Novo status")
	cmd.Flags().StringVar(&req.Observacoes, "observacoes", "", "Observações para o cidadão")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}
