package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type SessionState string

const (
	StateIdle       SessionState = "idle"
	StateInProgress SessionState = "in_progress"
	StateCompleted  SessionState = "completed"
	StateEnded      SessionState = "ended"
)

var (
	// ErrInvalidState signals an operation invoked in an incompatible
	// session state. This is a caller-side ordering bug and is always
	// surfaced, never swallowed.
	ErrInvalidState = errors.New("operation not valid in current session state")

	// ErrOutOfRange signals a question lookup when no current question
	// exists (idle or terminal session).
	ErrOutOfRange = errors.New("no current question")
)

// noNarration is the narration marker value meaning nothing has been
// read aloud yet.
const noNarration = -1

// InterviewSession is the state machine driving one candidate through
// an ordered question list. It is not safe for concurrent use; callers
// hold the store's lock around every transition.
type InterviewSession struct {
	ID           uuid.UUID        `json:"id"`
	Skills       []string         `json:"skills"`
	Experience   ExperienceLevel  `json:"experience"`
	Questions    []string         `json:"questions"`
	Index        int              `json:"index"`
	Answers      []string         `json:"answers"`
	Results      []QuestionResult `json:"results"`
	State        SessionState     `json:"state"`
	LastNarrated int              `json:"-"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func NewInterviewSession(skills []string, experience ExperienceLevel) *InterviewSession {
	now := time.Now()
	return &InterviewSession{
		ID:           uuid.New(),
		Skills:       skills,
		Experience:   experience,
		State:        StateIdle,
		LastNarrated: noNarration,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Load installs a fresh question sequence and resets all progress.
// Loading a non-empty sequence moves the session to InProgress; an
// empty sequence leaves it Idle. Load on a terminal session restarts it.
func (s *InterviewSession) Load(questions []string) {
	s.Questions = append([]string(nil), questions...)
	s.Index = 0
	s.Answers = nil
	s.Results = nil
	s.LastNarrated = noNarration
	if len(s.Questions) > 0 {
		s.State = StateInProgress
	} else {
		s.State = StateIdle
	}
	s.UpdatedAt = time.Now()
}

// CurrentQuestion returns the question at the current index.
func (s *InterviewSession) CurrentQuestion() (string, error) {
	if s.State != StateInProgress || s.Index >= len(s.Questions) {
		return "", ErrOutOfRange
	}
	return s.Questions[s.Index], nil
}

// NeedsNarration reports whether the current question has not been
// read aloud yet. It stays false on repeated polls of the same index
// once MarkNarrated has run.
func (s *InterviewSession) NeedsNarration() bool {
	return s.State == StateInProgress && s.LastNarrated != s.Index
}

// MarkNarrated records that the current question was read aloud.
func (s *InterviewSession) MarkNarrated() {
	s.LastNarrated = s.Index
}

// SubmitAnswer records text (possibly empty) for the current question
// and advances. The last answer moves the session to Completed.
func (s *InterviewSession) SubmitAnswer(text string) error {
	if s.State != StateInProgress {
		return ErrInvalidState
	}
	if len(s.Answers) > s.Index {
		// At most one answer per question; amending is not supported.
		return ErrInvalidState
	}
	s.Answers = append(s.Answers, text)
	s.Index++
	if s.Index >= len(s.Questions) {
		s.State = StateCompleted
	}
	s.UpdatedAt = time.Now()
	return nil
}

// End terminates the session early. Unanswered questions stay
// unanswered. Ending an already terminal session is rejected.
func (s *InterviewSession) End() error {
	if s.State == StateCompleted || s.State == StateEnded {
		return ErrInvalidState
	}
	s.State = StateEnded
	s.UpdatedAt = time.Now()
	return nil
}

// Progress returns the 1-based number of the question on screen and
// the total count.
func (s *InterviewSession) Progress() (current, total int) {
	total = len(s.Questions)
	current = s.Index + 1
	if current > total {
		current = total
	}
	return current, total
}

// Done reports whether the session reached a terminal state.
func (s *InterviewSession) Done() bool {
	return s.State == StateCompleted || s.State == StateEnded
}
