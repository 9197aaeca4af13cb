package main

import (
	"log"

	"ouvidoria/internal/adapter/http/routes"
	"ouvidoria/internal/config"
	"ouvidoria/internal/logging"
	"ouvidoria/internal/observability"

	"go.uber.org/zap"
)

// @title           Ouvidoria API
// @version         1.0
// @description     Registro e acompanhamento de manifestações (reclamações, denúncias, sugestões, elogios).

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logging.SetGlobal(logger)

	shutdownTracer := observability.InitTracer(cfg)
	defer shutdownTracer()

	if err := routes.Run(cfg); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}
