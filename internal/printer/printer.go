package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/zrohdes/ai-survey-platform/internal/dashboard"
	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
)

func init() {
	// NO_COLOR still disables colors
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	bold   = color.New(color.Bold)
	faint  = color.New(color.Faint)
)

const barWidth = 30

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		green.Printf("✓ %s", msg)
	} else {
		green.Print(msg)
	}
}

func Info(format string, a ...any) {
	fmt.Printf(format, a...)
}

// Warning prints a warning message in yellow with a warning emoji prefix
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		yellow.Printf("⚠️  %s", msg)
	} else {
		yellow.Print(msg)
	}
}

// Error prints title, explanation and suggestions to stderr and returns an error
// carrying only the title, since cobra runs with SilenceErrors.
func Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(os.Stderr, "%s\n\n", title)
	if explanation != "" {
		fmt.Fprintf(os.Stderr, "%s\n", explanation)
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(os.Stderr, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(os.Stderr, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(os.Stderr, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(os.Stderr, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	return fmt.Errorf("%s", title)
}

// Step prints a step message with emphasis (used in multi-step operations)
func Step(format string, a ...any) {
	cyan.Printf("→ %s", fmt.Sprintf(format, a...))
}

// SurveyList renders the dashboard's survey cards with their response counts and share hint.
func SurveyList(w io.Writer, cards []dashboard.SurveyCard) {
	if len(cards) == 0 {
		faint.Fprintln(w, "No surveys yet. Create one with `survey create`.")
		return
	}
	for _, card := range cards {
		s := card.Survey
		bold.Fprintf(w, "#%d %s\n", s.ID, s.Title)
		if s.Description != nil && *s.Description != "" {
			fmt.Fprintf(w, "   %s\n", *s.Description)
		}
		faint.Fprintf(w, "   %d questions, created %s\n", len(s.Questions), s.CreatedAt.Format("2006-01-02"))

		n := len(card.Responses)
		fmt.Fprintf(w, "   %s", plural(n, "response"))
		if n == 0 {
			yellow.Fprint(w, "  ⚠️  No responses yet")
		}
		fmt.Fprintln(w)
		cyan.Fprintf(w, "   share: survey take --survey %d\n", s.ID)
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Analytics renders the sentiment chart and the trend and recommendation lists.
func Analytics(w io.Writer, summary *domain_models.AnalysisSummary) {
	if summary == nil {
		faint.Fprintln(w, "No analytics yet. Create a survey and collect responses first.")
		return
	}

	bold.Fprintln(w, "Sentiment")
	for _, share := range dashboard.SentimentShares(summary) {
		fmt.Fprintf(w, "  %-8s %s %5.1f%% (%d)\n", share.Label, Bar(share.Percent, barWidth), share.Percent, share.Count)
	}

	bulleted(w, "Trends", summary.Trends)
	bulleted(w, "Recommendations", summary.Recommendations)
}

// Question renders one wizard step with its progress bar.
func Question(w io.Writer, q domain_models.Question, index, total int, progress float64) {
	faint.Fprintf(w, "Question %d of %d %s\n", index+1, total, Bar(progress, barWidth))
	bold.Fprintf(w, "%s\n", q.Text)
	switch q.Type {
	case domain_models.QuestionTypeMultipleChoice:
		for i, opt := range q.Options {
			fmt.Fprintf(w, "  %d) %s\n", i+1, opt)
		}
	case domain_models.QuestionTypeRating:
		fmt.Fprintln(w, "  Rate from 1 to 5")
	}
}

// Bar draws a horizontal bar for a 0..100 percentage.
func Bar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent/100*float64(width) + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func bulleted(w io.Writer, title string, items []string) {
	fmt.Fprintln(w)
	bold.Fprintln(w, title)
	if len(items) == 0 {
		faint.Fprintln(w, "  (none)")
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "  • %s\n", item)
	}
}
