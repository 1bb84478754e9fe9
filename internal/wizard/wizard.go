// Package wizard holds the respondent-side state machine that walks a survey one
// question at a time.
package wizard

import (
	"errors"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
)

var (
	ErrNoQuestions  = errors.New("survey has no questions")
	ErrSubmitted    = errors.New("survey already submitted")
	ErrNotLastIndex = errors.New("submit is only available on the last question")
	ErrEmptyAnswer  = errors.New("answer is empty")
)

// AnswerPolicy decides what happens when a question is answered a second time after going back.
type AnswerPolicy int

const (
	// AppendAnswers records every answer, so a revisited question appears more than once.
	AppendAnswers AnswerPolicy = iota
	// OverwriteAnswers keeps only the latest answer for each question.
	OverwriteAnswers
)

type Option func(*Wizard)

func WithPolicy(p AnswerPolicy) Option {
	return func(w *Wizard) { w.policy = p }
}

type Wizard struct {
	questions []domain_models.Question
	index     int
	answers   []domain_models.Answer
	submitted bool
	policy    AnswerPolicy
}

func New(questions []domain_models.Question, opts ...Option) (*Wizard, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	// answers are keyed by question id, so ids must be usable
	numbered := domain_models.NumberQuestions(append([]domain_models.Question(nil), questions...))
	w := &Wizard{
		questions: numbered,
		answers:   make([]domain_models.Answer, 0, len(questions)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

func (w *Wizard) Current() domain_models.Question { return w.questions[w.index] }
func (w *Wizard) Index() int                      { return w.index }
func (w *Wizard) Total() int                      { return len(w.questions) }
func (w *Wizard) Submitted() bool                 { return w.submitted }
func (w *Wizard) IsLast() bool                    { return w.index == len(w.questions)-1 }

// Progress is the percentage shown by the progress bar, counting the current question.
func (w *Wizard) Progress() float64 {
	return float64(w.index+1) / float64(len(w.questions)) * 100
}

// Answer records value for the current question. It advances to the next question,
// or on the last one submits and returns the full answer sequence.
func (w *Wizard) Answer(value domain_models.AnswerValue) ([]domain_models.Answer, bool, error) {
	if w.submitted {
		return nil, false, ErrSubmitted
	}
	if !value.IsSet() {
		return nil, false, ErrEmptyAnswer
	}

	w.record(domain_models.Answer{QuestionID: w.Current().ID, Value: value})

	if w.IsLast() {
		return w.submit(), true, nil
	}
	w.index++
	return nil, false, nil
}

// Back moves to the previous question. Answers already recorded are kept.
func (w *Wizard) Back() {
	if w.submitted || w.index == 0 {
		return
	}
	w.index--
}

// Submit sends what has been answered so far without answering the last question.
func (w *Wizard) Submit() ([]domain_models.Answer, error) {
	if w.submitted {
		return nil, ErrSubmitted
	}
	if !w.IsLast() {
		return nil, ErrNotLastIndex
	}
	return w.submit(), nil
}

// Answers returns a copy of the sequence recorded so far.
func (w *Wizard) Answers() []domain_models.Answer {
	return append([]domain_models.Answer{}, w.answers...)
}

func (w *Wizard) record(a domain_models.Answer) {
	if w.policy == OverwriteAnswers {
		for i := range w.answers {
			if w.answers[i].QuestionID == a.QuestionID {
				w.answers[i] = a
				return
			}
		}
	}
	w.answers = append(w.answers, a)
}

func (w *Wizard) submit() []domain_models.Answer {
	w.submitted = true
	return w.Answers()
}
