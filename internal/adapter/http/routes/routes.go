package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "ouvidoria/docs"
	"ouvidoria/internal/adapter/http/handlers"
	"ouvidoria/internal/adapter/http/middleware"
	"ouvidoria/internal/config"
	"ouvidoria/internal/logging"
	"ouvidoria/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const PathAPI = "/api"

// Run wires storage, use case and HTTP server, and blocks until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	ctx := context.Background()

	store, err := OpenStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer store.Close()

	uc := usecase.NewManifestacaoUseCase(store.Repo)
	router := NewRouter(cfg, uc, store.Check)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.L().Info("[http] api listening", zap.String("addr", srv.Addr), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logging.L().Info("[http] shutdown complete")
	return nil
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(cfg *config.Config, uc usecase.IManifestacaoUseCase, check handlers.StorageCheck) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthHandler := handlers.NewHealthHandler(check)
	manifestacaoHandler := handlers.NewManifestacaoHandler(uc, time.Local)

	addHealthRoutes(router, healthHandler)

	api := router.Group(PathAPI)
	addPingRoutes(api.Group("/v1"), healthHandler)
	addManifestacaoRoutes(api, manifestacaoHandler, middleware.RateLimitByIP(cfg.SubmissionRateMin, time.Minute))

	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.L().Error("[http] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	if cfg.TracingEnabled {
		router.Use(middleware.RequestTracing())
	}
}
