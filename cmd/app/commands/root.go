package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zrohdes/ai-survey-platform/pkg/surveyclient"
)

const defaultAPIURL = "http://localhost:5000"

var (
	version string
	commit  string
	date    string

	configPath string
	apiURL     string
)

var rootCmd = &cobra.Command{
	Use:   "survey",
	Short: "AI survey platform: API server and terminal client",
	Long: `survey runs the AI survey API server and a terminal client for it.

Surveys are created from a topic by a language model (OpenAI or Gemini),
answered one question at a time, and summarised into sentiment, trends and
recommendations by the same model.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute runs the root command. Called once by main.main().
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("SURVEY_API_URL", defaultAPIURL), "base URL of the survey API")
}

func newClient() *surveyclient.Client {
	return surveyclient.New(apiURL)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
