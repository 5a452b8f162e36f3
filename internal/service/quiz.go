package service

import (
	"context"
	"sync"
	"time"

	"feline-fascination/internal/domain"
	"feline-fascination/internal/dto"
	"feline-fascination/internal/logger"
	"feline-fascination/internal/util"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	Start(ctx context.Context) (*dto.QuizSessionResponse, error)
	Get(ctx context.Context, sessionID string) (*dto.QuizSessionResponse, error)
	Select(ctx context.Context, sessionID, choice string) (*dto.QuizSessionResponse, error)
	Confirm(ctx context.Context, sessionID string) (*dto.ConfirmAnswerResponse, error)
	Reset(ctx context.Context, sessionID string) (*dto.QuizSessionResponse, error)
	End(ctx context.Context, sessionID string) error
}

// quizService implements QuizService. Each visitor gets a session holding
// a QuizEngine snapshot; the engine itself is rebuilt per request.
type quizService struct {
	questions []domain.QuizQuestion
	store     QuizSessionStore
	newID     func() string
	now       func() time.Time

	// Serializes load-mutate-save within this process only. Replicas sharing
	// a redis cache can still interleave two writes to the same session, and
	// the later Put wins.
	mu sync.Mutex
}

// NewQuizService creates a new instance of quizService
func NewQuizService(questions []domain.QuizQuestion, store QuizSessionStore) (QuizService, error) {
	if err := domain.ValidateQuestions(questions); err != nil {
		return nil, err
	}
	return &quizService{
		questions: questions,
		store:     store,
		newID:     util.NewULID,
		now:       time.Now,
	}, nil
}

func (s *quizService) Start(ctx context.Context) (*dto.QuizSessionResponse, error) {
	engine, err := domain.NewQuizEngine(s.questions)
	if err != nil {
		return nil, err
	}
	session := domain.NewQuizSession(s.newID())
	if err := s.store.Put(ctx, session); err != nil {
		return nil, err
	}
	logger.Get().Info("Quiz session started", zap.String("session_id", session.ID))
	return toSessionResponse(session.ID, engine), nil
}

func (s *quizService) Get(ctx context.Context, sessionID string) (*dto.QuizSessionResponse, error) {
	_, engine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(sessionID, engine), nil
}

func (s *quizService) Select(ctx context.Context, sessionID, choice string) (*dto.QuizSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, engine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := engine.SelectOption(choice); err != nil {
		return nil, err
	}
	if err := s.save(ctx, session, engine); err != nil {
		return nil, err
	}
	return toSessionResponse(sessionID, engine), nil
}

func (s *quizService) Confirm(ctx context.Context, sessionID string) (*dto.ConfirmAnswerResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, engine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	result, err := engine.Confirm()
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, session, engine); err != nil {
		return nil, err
	}

	if result.Phase == domain.PhaseComplete {
		logger.Get().Info("Quiz session completed",
			zap.String("session_id", sessionID),
			zap.Int("score", engine.State().Score),
			zap.Int("total", engine.Total()),
		)
	}

	return &dto.ConfirmAnswerResponse{
		Correct:       result.Correct,
		CorrectOption: result.CorrectOption,
		Session:       *toSessionResponse(sessionID, engine),
	}, nil
}

func (s *quizService) Reset(ctx context.Context, sessionID string) (*dto.QuizSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, engine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	engine.Reset()
	if err := s.save(ctx, session, engine); err != nil {
		return nil, err
	}
	logger.Get().Debug("Quiz session reset", zap.String("session_id", sessionID))
	return toSessionResponse(sessionID, engine), nil
}

// End discards the session. Ending an unknown session is a not-found error.
func (s *quizService) End(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.Get(ctx, sessionID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	logger.Get().Debug("Quiz session ended", zap.String("session_id", sessionID))
	return nil
}

func (s *quizService) load(ctx context.Context, sessionID string) (*domain.QuizSession, *domain.QuizEngine, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	engine, err := domain.RestoreQuizEngine(s.questions, session.State)
	if err != nil {
		logger.Get().Warn("Stored quiz session does not fit the question set",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, nil, err
	}
	return session, engine, nil
}

func (s *quizService) save(ctx context.Context, session *domain.QuizSession, engine *domain.QuizEngine) error {
	session.State = engine.State()
	session.UpdatedAt = s.now()
	return s.store.Put(ctx, session)
}

func toSessionResponse(sessionID string, engine *domain.QuizEngine) *dto.QuizSessionResponse {
	state := engine.State()
	resp := &dto.QuizSessionResponse{
		SessionID: sessionID,
		Phase:     string(engine.Phase()),
		Step:      state.Step,
		Total:     engine.Total(),
		Score:     state.Score,
		Progress:  engine.Progress(),
	}
	if q, ok := engine.Current(); ok {
		resp.Question = &dto.QuestionView{
			Prompt:        q.Prompt,
			Options:       q.Options,
			PendingAnswer: state.PendingAnswer,
		}
	} else {
		resp.Summary = &dto.QuizSummary{Score: state.Score, Total: engine.Total()}
	}
	return resp
}
