package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoadedSession(questions ...string) *InterviewSession {
	s := NewInterviewSession([]string{"python", "sql"}, ExperienceJunior)
	s.Load(questions)
	return s
}

func TestSessionLifecycle(t *testing.T) {
	questions := []string{"q1", "q2", "q3"}
	s := newLoadedSession(questions...)

	require.Equal(t, StateInProgress, s.State)

	for i, q := range questions {
		current, err := s.CurrentQuestion()
		require.NoError(t, err)
		assert.Equal(t, q, current)

		answer := fmt.Sprintf("answer %d", i)
		require.NoError(t, s.SubmitAnswer(answer))
	}

	assert.Equal(t, StateCompleted, s.State)
	assert.Equal(t, len(questions), s.Index)
	require.Len(t, s.Answers, len(questions))
	for i := range questions {
		assert.Equal(t, fmt.Sprintf("answer %d", i), s.Answers[i])
	}
}

func TestSessionLoadEmptyStaysIdle(t *testing.T) {
	s := NewInterviewSession(nil, ExperienceFresher)
	s.Load(nil)

	assert.Equal(t, StateIdle, s.State)

	_, err := s.CurrentQuestion()
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.ErrorIs(t, s.SubmitAnswer("hello"), ErrInvalidState)
}

func TestSessionAnswersNeverOutrunQuestions(t *testing.T) {
	s := newLoadedSession("q1", "q2")

	require.NoError(t, s.SubmitAnswer("a1"))
	assert.LessOrEqual(t, len(s.Answers), s.Index)

	require.NoError(t, s.SubmitAnswer("a2"))
	assert.Equal(t, StateCompleted, s.State)
	assert.Len(t, s.Answers, 2)
}

func TestSessionEmptyAnswerIsValid(t *testing.T) {
	s := newLoadedSession("q1")

	require.NoError(t, s.SubmitAnswer(""))
	assert.Equal(t, StateCompleted, s.State)
	assert.Equal(t, []string{""}, s.Answers)
}

func TestSessionSubmitAfterCompletedFails(t *testing.T) {
	s := newLoadedSession("q1")
	require.NoError(t, s.SubmitAnswer("done"))
	require.Equal(t, StateCompleted, s.State)

	err := s.SubmitAnswer("extra")
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Len(t, s.Answers, 1, "failed submit must not mutate state")

	_, err = s.CurrentQuestion()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSessionEnd(t *testing.T) {
	t.Run("from idle", func(t *testing.T) {
		s := NewInterviewSession(nil, ExperienceFresher)
		require.NoError(t, s.End())
		assert.Equal(t, StateEnded, s.State)
	})

	t.Run("mid interview", func(t *testing.T) {
		s := newLoadedSession("q1", "q2", "q3")
		require.NoError(t, s.SubmitAnswer("a1"))
		require.NoError(t, s.End())

		assert.Equal(t, StateEnded, s.State)
		assert.Len(t, s.Answers, 1)
		assert.ErrorIs(t, s.SubmitAnswer("a2"), ErrInvalidState)
	})

	t.Run("terminal states reject end", func(t *testing.T) {
		s := newLoadedSession("q1")
		require.NoError(t, s.SubmitAnswer("a1"))
		assert.ErrorIs(t, s.End(), ErrInvalidState)

		s2 := newLoadedSession("q1")
		require.NoError(t, s2.End())
		assert.ErrorIs(t, s2.End(), ErrInvalidState)
	})
}

func TestSessionNarrationFiresOncePerIndex(t *testing.T) {
	s := newLoadedSession("q1", "q2")

	require.True(t, s.NeedsNarration())
	s.MarkNarrated()

	for i := 0; i < 5; i++ {
		assert.False(t, s.NeedsNarration(), "re-polling the same question must not re-narrate")
	}

	require.NoError(t, s.SubmitAnswer("a1"))
	require.True(t, s.NeedsNarration(), "reaching a new question narrates again")
	s.MarkNarrated()
	assert.False(t, s.NeedsNarration())
}

func TestSessionLoadRestartsTerminalSession(t *testing.T) {
	s := newLoadedSession("q1")
	require.NoError(t, s.SubmitAnswer("a1"))
	require.Equal(t, StateCompleted, s.State)

	s.Load([]string{"new q1", "new q2"})

	assert.Equal(t, StateInProgress, s.State)
	assert.Equal(t, 0, s.Index)
	assert.Empty(t, s.Answers)
	assert.True(t, s.NeedsNarration())

	current, err := s.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, "new q1", current)
}

func TestSessionProgress(t *testing.T) {
	s := newLoadedSession("q1", "q2", "q3")

	current, total := s.Progress()
	assert.Equal(t, 1, current)
	assert.Equal(t, 3, total)

	require.NoError(t, s.SubmitAnswer("a1"))
	current, _ = s.Progress()
	assert.Equal(t, 2, current)

	require.NoError(t, s.SubmitAnswer("a2"))
	require.NoError(t, s.SubmitAnswer("a3"))
	current, total = s.Progress()
	assert.Equal(t, 3, current, "progress is clamped to the total once completed")
	assert.Equal(t, 3, total)
}
