package commands

import (
	"github.com/spf13/cobra"

	"github.com/zrohdes/ai-survey-platform/internal/dashboard"
	"github.com/zrohdes/ai-survey-platform/internal/printer"
)

var dashboardUserID int64

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "List your surveys and analyze every response collected so far",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client := newClient()
		out := cmd.OutOrStdout()

		cards, err := dashboard.LoadSurveyCards(ctx, client, dashboardUserID)
		if err != nil {
			return printer.Error("Failed to load surveys", err.Error(), nil)
		}
		printer.SurveyList(out, cards)

		if len(cards) > 0 {
			printer.Step("Analyzing responses\n")
		}
		summary, err := dashboard.Analyze(ctx, client, cards)
		if err != nil {
			return printer.Error("Failed to load analytics", err.Error(),
				[]string{"The language model may be unavailable, try again later"})
		}
		printer.Analytics(out, summary)
		return nil
	},
}

func init() {
	dashboardCmd.Flags().Int64Var(&dashboardUserID, "user", 0, "id of the survey owner")
	_ = dashboardCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(dashboardCmd)
}
