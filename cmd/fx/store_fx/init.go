package store_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zrohdes/ai-survey-platform/internal/config"
	"github.com/zrohdes/ai-survey-platform/internal/infra"
	"github.com/zrohdes/ai-survey-platform/internal/repositories"
)

var Module = fx.Provide(provideRepositories)

type Repositories struct {
	fx.Out

	Users     repositories.UserRepository
	Surveys   repositories.SurveyRepository
	Responses repositories.ResponseRepository
}

// provideRepositories backs all three collections with one store chosen by store.driver.
func provideRepositories(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (Repositories, error) {
	if cfg.Store.Driver == config.StoreMemory {
		store := repositories.NewMemoryStore()
		logger.Info("using in-memory store")
		return Repositories{Users: store, Surveys: store, Responses: store}, nil
	}

	db, err := infra.OpenDatabase(cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return Repositories{}, err
	}
	if err := infra.RunMigrations(context.Background(), db, cfg.Store.Driver); err != nil {
		infra.CloseDatabase(db, logger)
		return Repositories{}, err
	}
	logger.Info("using SQL store", zap.String("driver", cfg.Store.Driver))

	lc.Append(fx.StopHook(func() {
		infra.CloseDatabase(db, logger)
	}))
	return sqlRepositories(db), nil
}

func sqlRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:     repositories.NewUserRepository(db),
		Surveys:   repositories.NewSurveyRepository(db),
		Responses: repositories.NewResponseRepository(db),
	}
}
