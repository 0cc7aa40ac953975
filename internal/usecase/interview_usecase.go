package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/janvipargai1/ai-interview-simulator/internal/model"
	"github.com/janvipargai1/ai-interview-simulator/internal/repository"
	"github.com/janvipargai1/ai-interview-simulator/internal/service"
	"github.com/janvipargai1/ai-interview-simulator/internal/util"
	"go.uber.org/zap"
)

// InterviewUsecase wires resume analysis, question generation, the
// session state machine and answer scoring into the operations the
// transport layer calls.
type InterviewUsecase struct {
	sessions  *repository.SessionRepository
	questions *QuestionGenerator
	evaluator *AnswerEvaluator
	tts       *service.TTSService
	logger    *zap.Logger

	mu            sync.Mutex
	lastQuestions []string
}

func NewInterviewUsecase(
	sessions *repository.SessionRepository,
	questions *QuestionGenerator,
	evaluator *AnswerEvaluator,
	tts *service.TTSService,
	logger *zap.Logger,
) *InterviewUsecase {
	return &InterviewUsecase{
		sessions:  sessions,
		questions: questions,
		evaluator: evaluator,
		tts:       tts,
		logger:    logger,
	}
}

// AnalyzeResume extracts text from the uploaded PDF and derives the
// candidate's skills and experience level.
func (uc *InterviewUsecase) AnalyzeResume(path string) ([]string, model.ExperienceLevel, error) {
	text, err := util.ExtractResumeText(path)
	if err != nil {
		return nil, "", fmt.Errorf("extract resume text: %w", err)
	}

	skills := util.ExtractSkills(text)
	experience := util.ExtractExperience(text)

	uc.logger.Info("resume analyzed",
		zap.Int("skills", skills.Len()),
		zap.String("experience", string(experience)),
	)
	return skills.List(), experience, nil
}

// GenerateQuestions produces a fresh question list and remembers it for
// the read endpoint. An empty result means generation failed; callers
// may re-invoke.
func (uc *InterviewUsecase) GenerateQuestions(ctx context.Context, skills []string, experience model.ExperienceLevel, count int) []string {
	questions := uc.questions.Generate(ctx, skills, experience, count)

	uc.mu.Lock()
	uc.lastQuestions = questions
	uc.mu.Unlock()

	return questions
}

// LastQuestions returns the most recently generated question list.
func (uc *InterviewUsecase) LastQuestions() []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return append([]string(nil), uc.lastQuestions...)
}

// StartInterview creates a session and loads it with the given
// questions, falling back to the last generated list.
func (uc *InterviewUsecase) StartInterview(skills []string, experience model.ExperienceLevel, questions []string) (*model.InterviewSession, error) {
	if len(questions) == 0 {
		questions = uc.LastQuestions()
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions available, generate questions first")
	}

	session := model.NewInterviewSession(skills, experience)
	session.Load(questions)
	if err := uc.sessions.Save(session); err != nil {
		return nil, err
	}

	uc.logger.Info("interview started",
		zap.String("session_id", session.ID.String()),
		zap.Int("questions", len(questions)),
	)
	return session, nil
}

// CurrentQuestion returns the question on screen and triggers narration
// the first time each question is reached. Re-polling the same index
// does not narrate again.
func (uc *InterviewUsecase) CurrentQuestion(id string) (question string, current, total int, err error) {
	err = uc.sessions.WithSession(id, func(s *model.InterviewSession) error {
		q, qErr := s.CurrentQuestion()
		if qErr != nil {
			return qErr
		}
		if s.NeedsNarration() {
			uc.tts.Speak(q)
			s.MarkNarrated()
		}
		question = q
		current, total = s.Progress()
		return nil
	})
	return question, current, total, err
}

// SubmitAnswer records the answer, advances the session and scores the
// answer. Scoring runs outside the store lock so a slow model call does
// not stall other sessions; the rubric is appended afterwards.
func (uc *InterviewUsecase) SubmitAnswer(ctx context.Context, id, answer string) (result model.QuestionResult, done bool, next string, err error) {
	var question string
	var experience model.ExperienceLevel

	err = uc.sessions.WithSession(id, func(s *model.InterviewSession) error {
		q, qErr := s.CurrentQuestion()
		if qErr != nil {
			// No current question means the session is idle or
			// terminal; submitting now is a caller ordering bug.
			return model.ErrInvalidState
		}
		if sErr := s.SubmitAnswer(answer); sErr != nil {
			return sErr
		}
		question = q
		experience = s.Experience
		done = s.Done()
		if !done {
			next, _ = s.CurrentQuestion()
		}
		return nil
	})
	if err != nil {
		return model.QuestionResult{}, false, "", err
	}

	evaluation := uc.evaluator.Evaluate(ctx, question, answer, experience)
	result = model.QuestionResult{
		Question:   question,
		Answer:     answer,
		Evaluation: evaluation,
	}

	if appendErr := uc.sessions.WithSession(id, func(s *model.InterviewSession) error {
		s.Results = append(s.Results, result)
		return nil
	}); appendErr != nil {
		uc.logger.Warn("failed to record evaluation", zap.Error(appendErr))
	}

	return result, done, next, nil
}

// EndInterview terminates the session early.
func (uc *InterviewUsecase) EndInterview(id string) error {
	return uc.sessions.WithSession(id, func(s *model.InterviewSession) error {
		return s.End()
	})
}

// Results returns the session with its per-question rubrics.
func (uc *InterviewUsecase) Results(id string) (*model.InterviewSession, error) {
	return uc.sessions.FindByID(id)
}
