package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// OptionsPerQuestion is the number of choices every quiz question offers.
const OptionsPerQuestion = 4

// QuizQuestion is an immutable multiple-choice question.
type QuizQuestion struct {
	Prompt        string   `yaml:"prompt" json:"prompt"`
	Options       []string `yaml:"options" json:"options"`
	CorrectOption string   `yaml:"correct_option" json:"-"`
}

// Validate checks the question shape: a prompt, four unique non-empty
// options and a correct option that is one of them.
func (q QuizQuestion) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return invalidQuestion("prompt is required")
	}
	if len(q.Options) != OptionsPerQuestion {
		return invalidQuestion(fmt.Sprintf("expected %d options, got %d", OptionsPerQuestion, len(q.Options)))
	}
	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return invalidQuestion("options must not be empty")
		}
		if _, dup := seen[opt]; dup {
			return invalidQuestion(fmt.Sprintf("duplicate option %q", opt))
		}
		seen[opt] = struct{}{}
	}
	if !q.HasOption(q.CorrectOption) {
		return invalidQuestion(fmt.Sprintf("correct option %q is not among the options", q.CorrectOption))
	}
	return nil
}

// HasOption reports whether choice is one of the question's options.
func (q QuizQuestion) HasOption(choice string) bool {
	for _, opt := range q.Options {
		if opt == choice {
			return true
		}
	}
	return false
}

func (q QuizQuestion) clone() QuizQuestion {
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	q.Options = opts
	return q
}

// ValidateQuestions validates a question set and rejects an empty one.
func ValidateQuestions(questions []QuizQuestion) error {
	if len(questions) == 0 {
		return NewEmptyCatalogError("question")
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return NewInvalidQuestionError(i, err.Error())
		}
	}
	return nil
}

func invalidQuestion(message string) error {
	return errors.New(message)
}

// QuizPhase is the coarse state of a quiz.
type QuizPhase string

const (
	PhaseInProgress QuizPhase = "in_progress"
	PhaseComplete   QuizPhase = "complete"
)

// QuizState is the snapshot of a quiz in progress.
// Invariant: 0 <= Score <= Step <= number of questions.
type QuizState struct {
	Step          int     `json:"step"`
	Score         int     `json:"score"`
	PendingAnswer *string `json:"pending_answer,omitempty"`
}

func (s QuizState) clone() QuizState {
	if s.PendingAnswer != nil {
		p := *s.PendingAnswer
		s.PendingAnswer = &p
	}
	return s
}

// ConfirmResult reports the outcome of a confirmed answer.
type ConfirmResult struct {
	Correct       bool
	CorrectOption string
	Phase         QuizPhase
}

// QuizEngine walks a fixed set of questions one confirmed answer at a time.
// It is not safe for concurrent use.
type QuizEngine struct {
	questions []QuizQuestion
	state     QuizState
}

// NewQuizEngine validates the questions and returns an engine at step 0.
func NewQuizEngine(questions []QuizQuestion) (*QuizEngine, error) {
	if err := ValidateQuestions(questions); err != nil {
		return nil, err
	}
	owned := make([]QuizQuestion, len(questions))
	for i, q := range questions {
		owned[i] = q.clone()
	}
	return &QuizEngine{questions: owned}, nil
}

// RestoreQuizEngine rebuilds an engine from a stored snapshot.
func RestoreQuizEngine(questions []QuizQuestion, state QuizState) (*QuizEngine, error) {
	e, err := NewQuizEngine(questions)
	if err != nil {
		return nil, err
	}
	total := len(e.questions)
	if state.Step < 0 || state.Step > total {
		return nil, NewInvalidStateError(fmt.Sprintf("step %d out of range [0, %d]", state.Step, total))
	}
	if state.Score < 0 || state.Score > state.Step {
		return nil, NewInvalidStateError(fmt.Sprintf("score %d out of range [0, %d]", state.Score, state.Step))
	}
	if state.PendingAnswer != nil {
		if state.Step == total {
			state.PendingAnswer = nil
		} else if !e.questions[state.Step].HasOption(*state.PendingAnswer) {
			return nil, NewInvalidStateError(fmt.Sprintf("pending answer %q is not an option of question %d", *state.PendingAnswer, state.Step))
		}
	}
	e.state = state.clone()
	return e, nil
}

// State returns a copy of the current snapshot.
func (e *QuizEngine) State() QuizState {
	return e.state.clone()
}

func (e *QuizEngine) Total() int {
	return len(e.questions)
}

func (e *QuizEngine) Phase() QuizPhase {
	if e.state.Step >= len(e.questions) {
		return PhaseComplete
	}
	return PhaseInProgress
}

// Current returns the question awaiting an answer. ok is false once complete.
func (e *QuizEngine) Current() (q QuizQuestion, ok bool) {
	if e.Phase() == PhaseComplete {
		return QuizQuestion{}, false
	}
	return e.questions[e.state.Step].clone(), true
}

// SelectOption records a tentative answer for the current question.
func (e *QuizEngine) SelectOption(choice string) error {
	if e.Phase() == PhaseComplete {
		return NewQuizCompleteError()
	}
	if !e.questions[e.state.Step].HasOption(choice) {
		return NewUnknownOptionError(choice)
	}
	e.state.PendingAnswer = &choice
	return nil
}

// Confirm scores the pending answer and moves to the next step.
func (e *QuizEngine) Confirm() (ConfirmResult, error) {
	if e.Phase() == PhaseComplete {
		return ConfirmResult{}, NewQuizCompleteError()
	}
	if e.state.PendingAnswer == nil {
		return ConfirmResult{}, NewNoSelectionError()
	}

	q := e.questions[e.state.Step]
	correct := *e.state.PendingAnswer == q.CorrectOption
	if correct {
		e.state.Score++
	}
	e.state.Step++
	e.state.PendingAnswer = nil

	return ConfirmResult{
		Correct:       correct,
		CorrectOption: q.CorrectOption,
		Phase:         e.Phase(),
	}, nil
}

// Reset returns the quiz to its initial state from any state.
func (e *QuizEngine) Reset() {
	e.state = QuizState{}
}

// Progress is step / total in [0, 1].
func (e *QuizEngine) Progress() float64 {
	return float64(e.state.Step) / float64(len(e.questions))
}

// QuizSession is a visitor's quiz snapshot as kept in the session cache.
type QuizSession struct {
	ID        string    `json:"id"`
	State     QuizState `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewQuizSession creates a session at the initial quiz state.
func NewQuizSession(id string) *QuizSession {
	now := time.Now()
	return &QuizSession{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
