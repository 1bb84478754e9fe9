package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
	"github.com/zrohdes/ai-survey-platform/internal/printer"
	"github.com/zrohdes/ai-survey-platform/internal/wizard"
)

const (
	backCommand   = "b"
	submitCommand = "s"
	minRating     = 1
	maxRating     = 5
)

var (
	takeSurveyID  int64
	takeOverwrite bool

	errInputClosed = errors.New("input closed before the survey was submitted")
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Answer a survey one question at a time",
	Long: `Answer a survey one question at a time.

Pick multiple choice options by number, type free text, or rate from 1 to 5.
Enter "b" to go back one question and "s" on the last question to submit
without answering it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client := newClient()

		survey, err := client.GetSurvey(ctx, takeSurveyID)
		if err != nil {
			return printer.Error("Failed to load survey", err.Error(), nil)
		}

		policy := wizard.AppendAnswers
		if takeOverwrite {
			policy = wizard.OverwriteAnswers
		}

		answers, err := runWizard(cmd.InOrStdin(), cmd.OutOrStdout(), survey, policy)
		if err != nil {
			return printer.Error("Survey not submitted", err.Error(), nil)
		}

		if _, err := client.SubmitResponse(ctx, survey.ID, answers); err != nil {
			return printer.Error("Failed to submit response", err.Error(), nil)
		}
		printer.Success("Thank you! Your response has been recorded.\n")
		return nil
	},
}

// runWizard drives the wizard from line-oriented input until it submits.
func runWizard(in io.Reader, out io.Writer, survey *domain_models.Survey, policy wizard.AnswerPolicy) ([]domain_models.Answer, error) {
	w, err := wizard.New(survey.Questions, wizard.WithPolicy(policy))
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "%s\n\n", survey.Title)
	scanner := bufio.NewScanner(in)
	for {
		printer.Question(out, w.Current(), w.Index(), w.Total(), w.Progress())
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, errInputClosed
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == backCommand:
			w.Back()
			continue
		case line == submitCommand && w.IsLast():
			return w.Submit()
		}

		value, err := parseAnswer(w.Current(), line)
		if err != nil {
			fmt.Fprintf(out, "%v\n\n", err)
			continue
		}
		answers, done, err := w.Answer(value)
		if err != nil {
			return nil, err
		}
		if done {
			return answers, nil
		}
		fmt.Fprintln(out)
	}
}

func parseAnswer(q domain_models.Question, line string) (domain_models.AnswerValue, error) {
	if line == "" {
		return domain_models.AnswerValue{}, errors.New("please enter an answer")
	}

	switch {
	case q.Type == domain_models.QuestionTypeMultipleChoice && len(q.Options) > 0:
		if n, err := strconv.Atoi(line); err == nil {
			if n < 1 || n > len(q.Options) {
				return domain_models.AnswerValue{}, fmt.Errorf("choose an option between 1 and %d", len(q.Options))
			}
			return domain_models.TextValue(q.Options[n-1]), nil
		}
		for _, opt := range q.Options {
			if strings.EqualFold(opt, line) {
				return domain_models.TextValue(opt), nil
			}
		}
		return domain_models.AnswerValue{}, fmt.Errorf("%q is not one of the options", line)
	case q.Type == domain_models.QuestionTypeRating:
		n, err := strconv.Atoi(line)
		if err != nil || n < minRating || n > maxRating {
			return domain_models.AnswerValue{}, fmt.Errorf("rate from %d to %d", minRating, maxRating)
		}
		return domain_models.NumberValue(float64(n)), nil
	default:
		return domain_models.TextValue(line), nil
	}
}

func init() {
	takeCmd.Flags().Int64Var(&takeSurveyID, "survey", 0, "id of the survey to answer")
	takeCmd.Flags().BoolVar(&takeOverwrite, "overwrite", false, "keep only the latest answer when a question is answered again")
	_ = takeCmd.MarkFlagRequired("survey")
	rootCmd.AddCommand(takeCmd)
}
