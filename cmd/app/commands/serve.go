package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/zrohdes/ai-survey-platform/cmd/fx/ai_fx"
	"github.com/zrohdes/ai-survey-platform/cmd/fx/config_fx"
	"github.com/zrohdes/ai-survey-platform/cmd/fx/gateway_fx"
	"github.com/zrohdes/ai-survey-platform/cmd/fx/logger_fx"
	"github.com/zrohdes/ai-survey-platform/cmd/fx/response_fx"
	"github.com/zrohdes/ai-survey-platform/cmd/fx/server_fx"
	"github.com/zrohdes/ai-survey-platform/cmd/fx/store_fx"
	"github.com/zrohdes/ai-survey-platform/cmd/fx/survey_fx"
	"github.com/zrohdes/ai-survey-platform/cmd/fx/user_fx"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the HTTP API server.

The store (memory, postgres or sqlite) and the language model provider
(openai or gemini) are chosen by configuration. SQL stores are migrated
on startup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fx.New(serverOptions(configPath)).Run()
		return nil
	},
}

// serverOptions assembles every module the API server needs.
func serverOptions(path string) fx.Option {
	return fx.Options(
		config_fx.Module(path),
		logger_fx.Module,
		store_fx.Module,
		gateway_fx.Module,
		user_fx.Module,
		survey_fx.Module,
		response_fx.Module,
		ai_fx.Module,
		server_fx.Module,
	)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
