package dto

// QuestionView is the question a client renders while a quiz is in progress.
// The correct option is never sent before the answer is confirmed.
type QuestionView struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	PendingAnswer *string  `json:"pending_answer,omitempty"`
}

// QuizSummary is shown once every question has been answered.
type QuizSummary struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// QuizSessionResponse represents a visitor's quiz in the API response
type QuizSessionResponse struct {
	SessionID string        `json:"session_id"`
	Phase     string        `json:"phase"`
	Step      int           `json:"step"`
	Total     int           `json:"total"`
	Score     int           `json:"score"`
	Progress  float64       `json:"progress"`
	Question  *QuestionView `json:"question,omitempty"`
	Summary   *QuizSummary  `json:"summary,omitempty"`
}

// SelectOptionRequest represents a tentative answer in the API request
type SelectOptionRequest struct {
	Choice string `json:"choice"`
}

// ConfirmAnswerResponse reports the graded answer and the state that follows it.
type ConfirmAnswerResponse struct {
	Correct       bool                `json:"correct"`
	CorrectOption string              `json:"correct_option"`
	Session       QuizSessionResponse `json:"session"`
}
