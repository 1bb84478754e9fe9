package commands

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/zrohdes/ai-survey-platform/internal/printer"
	"github.com/zrohdes/ai-survey-platform/pkg/surveyclient"
)

var signupEmail string

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a user account",
	Example: `  survey signup --email jane@example.com
  survey signup --email jane@example.com --api http://survey.internal:5000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := newClient().CreateUser(cmd.Context(), signupEmail)
		if err != nil {
			var apiErr *surveyclient.APIError
			if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
				return printer.Error("Sign up rejected", apiErr.Message, nil)
			}
			return printer.Error("Failed to create account", err.Error(),
				[]string{"Check that the API server is running at " + apiURL})
		}

		printer.Success("Account created for %s\n", user.Email)
		printer.Info("Your user id is %d. Use it with `survey dashboard --user %d`.\n", user.ID, user.ID)
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "email address for the new account")
	_ = signupCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(signupCmd)
}
