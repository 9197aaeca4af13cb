package main

import (
	"ouvidoria/internal/dashboard"
	"ouvidoria/internal/logging"
	"ouvidoria/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDashboardCmd(a *app) *cobra.Command {
	var dias int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Indicadores, série diária, SLA e últimas manifestações",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := dashboard.New(a.svc, dashboard.WithSerieDias(dias)).Carregar(cmd.Context())
			if err != nil {
				logging.L().Error("[cli][dashboard] load failed", zap.Error(err))
				return fail("Erro ao carregar o dashboard. Tente novamente.", err)
			}
			if perr := snap.Err(); perr != nil {
				logging.L().Warn("[cli][dashboard] partial load", zap.Error(perr))
			}
			a.print(cmd, ui.DashboardView(a.styles, snap, a.loc))
			return nil
		},
	}
	cmd.Flags().IntVar(&dias, "dias", dashboard.DefaultSerieDia, "Dias da série diária")
	return cmd
}
