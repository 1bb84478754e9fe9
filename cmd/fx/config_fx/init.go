package config_fx

import (
	"go.uber.org/fx"

	"github.com/zrohdes/ai-survey-platform/internal/config"
)

// Module loads the configuration file at path (may be empty) and refuses to start on invalid settings.
func Module(path string) fx.Option {
	return fx.Provide(func() (*config.Config, error) {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	})
}
