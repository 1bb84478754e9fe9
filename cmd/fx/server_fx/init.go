package server_fx

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/api"
	"github.com/zrohdes/ai-survey-platform/internal/api/controllers"
	"github.com/zrohdes/ai-survey-platform/internal/config"
	"github.com/zrohdes/ai-survey-platform/pkg/llm"
)

var Module = fx.Options(
	fx.Provide(ProvideRouter),
	fx.Invoke(StartServer),
)

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	gateway llm.Gateway,
	userController *controllers.UserController,
	surveyController *controllers.SurveyController,
	responseController *controllers.ResponseController,
	aiController *controllers.AIController) *gin.Engine {

	gin.SetMode(cfg.Server.Mode)

	return api.NewRouter(logger.Named("http"), api.Controllers{
		Users:     userController,
		Surveys:   surveyController,
		Responses: responseController,
		AI:        aiController,
	}, api.HealthInfo{
		Store:    cfg.Store.Driver,
		Provider: gateway.Provider(),
	})
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
