// Command ouvidoria is the terminal front-end of the ouvidoria service: citizens submit
// and track manifestações, staff list, update and follow the dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ouvidoria/internal/client"
	"ouvidoria/internal/config"
	"ouvidoria/internal/logging"
	"ouvidoria/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ServiceFactory builds the backend for a command run. demoMode reports whether the
// demonstration data is being served.
type ServiceFactory func(cfg *config.Config) (svc client.Service, demoMode func() bool)

type app struct {
	cfg      *config.Config
	svc      client.Service
	demoMode func() bool
	styles   ui.Styles
	loc      *time.Location
	logLevel string
}

// userError carries a message meant for the person at the terminal.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

func fail(msg string, err error) error { return &userError{msg: msg, err: err} }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd(defaultServices).ExecuteContext(ctx)
	_ = logging.L().Sync()
	if err != nil {
		var ue *userError
		if !errors.As(err, &ue) {
			err = fmt.Errorf("erro: %w", err)
		}
		fmt.Fprintln(os.Stderr, ui.DefaultStyles().Error.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(services ServiceFactory) *cobra.Command {
	a := &app{styles: ui.DefaultStyles(), loc: time.Local}

	root := &cobra.Command{
		Use:   "ouvidoria",
		Short: "Ouvidoria - registro e acompanhamento de manifestações",
		Long: `Canal de comunicação entre o cidadão e a prefeitura.

Cidadãos registram reclamações, denúncias, sugestões, elogios, solicitações e pedidos
de informação e acompanham o andamento pelo número de protocolo. A equipe da ouvidoria
consulta, filtra e atualiza as manifestações e acompanha os indicadores.

Sem conexão com a API, os comandos usam dados de demonstração.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.cfg = config.LoadConfig()
			logger, err := logging.New(a.cfg.Env, a.logLevel)
			if err != nil {
				return err
			}
			logging.SetGlobal(logger)
			a.svc, a.demoMode = services(a.cfg)
			logging.L().Debug("[cli] backend configured",
				zap.String("api", a.cfg.Client.BaseURL), zap.Bool("demo_fallback", a.cfg.Client.DemoFallback))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "error", "Nível de log (debug, info, warn, error)")

	root.AddCommand(
		newNovaCmd(a),
		newConsultarCmd(a),
		newPainelCmd(a),
		newDashboardCmd(a),
	)
	return root
}

// defaultServices talks to the API and, unless disabled, falls back to the
// demonstration data when the API cannot be reached.
func defaultServices(cfg *config.Config) (client.Service, func() bool) {
	api := client.NewAPIClient(cfg.Client.BaseURL, cfg.Client.Timeout)
	if !cfg.Client.DemoFallback {
		return api, func() bool { return false }
	}
	latency := client.Latency{}
	if cfg.Client.DemoLatency {
		latency = client.DemoLatency
	}
	fb := client.NewFallbackService(api, client.NewMockService(latency))
	return fb, fb.DemoMode
}

// print writes body, preceded by the demonstration banner when the mock is in use.
func (a *app) print(cmd *cobra.Command, body string) {
	out := cmd.OutOrStdout()
	if a.demoMode != nil && a.demoMode() {
		fmt.Fprintln(out, ui.DemoBanner(a.styles))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, body)
}
