package commands

import (
	"github.com/spf13/cobra"

	"github.com/zrohdes/ai-survey-platform/internal/dashboard"
	"github.com/zrohdes/ai-survey-platform/internal/printer"
)

var createInput dashboard.CreateSurveyInput

var createCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create a survey whose questions are generated from a topic",
	Example: `  survey create --user 1 --title "Team offsite" --topic "offsite venue and agenda"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := createInput.Validate(); err != nil {
			return printer.Error("Invalid survey", err.Error(), nil)
		}

		printer.Step("Generating questions about %q\n", createInput.Topic)
		survey, err := dashboard.CreateSurveyFromTopic(cmd.Context(), newClient(), createInput)
		if err != nil {
			return printer.Error("Failed to create survey", err.Error(), nil)
		}

		printer.Success("Created survey #%d with %d questions\n", survey.ID, len(survey.Questions))
		printer.Info("Share it with `survey take --survey %d`.\n", survey.ID)
		return nil
	},
}

func init() {
	f := createCmd.Flags()
	f.Int64Var(&createInput.UserID, "user", 0, "id of the survey owner")
	f.StringVar(&createInput.Title, "title", "", "survey title")
	f.StringVar(&createInput.Description, "description", "", "optional description")
	f.StringVar(&createInput.Topic, "topic", "", "topic the questions are generated from")
	_ = createCmd.MarkFlagRequired("user")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("topic")
	rootCmd.AddCommand(createCmd)
}
