package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/janvipargai1/ai-interview-simulator/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateParsesPlainLines(t *testing.T) {
	stub := &stubGenerator{response: "What is a slice?\nExplain channels.\nWhat does defer do?"}
	generator := NewQuestionGenerator(stub, zap.NewNop())

	questions := generator.Generate(context.Background(), []string{"golang"}, model.ExperienceJunior, 3)

	require.Len(t, questions, 3)
	assert.Equal(t, "What is a slice?", questions[0])
	assert.Contains(t, stub.lastPrompt, "golang")
	assert.Contains(t, stub.lastPrompt, "junior")
	assert.Contains(t, stub.lastPrompt, "exactly 3")
}

func TestGenerateStripsEnumerationAndNoise(t *testing.T) {
	stub := &stubGenerator{response: `Here are your questions:

1. What is a tuple?
2) Explain list comprehensions.
- What is the GIL?
* How does garbage collection work?
Q5: What is a decorator?`}
	generator := NewQuestionGenerator(stub, zap.NewNop())

	questions := generator.Generate(context.Background(), []string{"python"}, model.ExperienceFresher, 10)

	require.Len(t, questions, 6)
	assert.Equal(t, "Here are your questions:", questions[0])
	assert.Equal(t, "What is a tuple?", questions[1])
	assert.Equal(t, "Explain list comprehensions.", questions[2])
	assert.Equal(t, "What is the GIL?", questions[3])
	assert.Equal(t, "How does garbage collection work?", questions[4])
	assert.Equal(t, "What is a decorator?", questions[5])
}

func TestGenerateTruncatesToCount(t *testing.T) {
	stub := &stubGenerator{response: "q1\nq2\nq3\nq4\nq5\nq6\nq7"}
	generator := NewQuestionGenerator(stub, zap.NewNop())

	questions := generator.Generate(context.Background(), []string{"sql"}, model.ExperienceMid, 5)

	assert.Len(t, questions, 5)
}

func TestGenerateDefaultCount(t *testing.T) {
	stub := &stubGenerator{response: "q1\nq2\nq3\nq4\nq5\nq6"}
	generator := NewQuestionGenerator(stub, zap.NewNop())

	questions := generator.Generate(context.Background(), []string{"python", "sql"}, model.ExperienceJunior, 0)

	assert.Len(t, questions, DefaultQuestionCount)
	assert.Contains(t, stub.lastPrompt, "exactly 5")
}

func TestGenerateEmptyOnModelFailure(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	generator := NewQuestionGenerator(stub, zap.NewNop())

	questions := generator.Generate(context.Background(), []string{"python"}, model.ExperienceJunior, 5)

	assert.Empty(t, questions, "generation failure surfaces as an empty sequence, not an error")
}

func TestGenerateEmptyOnBlankOutput(t *testing.T) {
	stub := &stubGenerator{response: "\n\n   \n```\n```"}
	generator := NewQuestionGenerator(stub, zap.NewNop())

	questions := generator.Generate(context.Background(), []string{"python"}, model.ExperienceJunior, 5)

	assert.Empty(t, questions)
}

func TestGenerateNoSkillsSkipsModelCall(t *testing.T) {
	stub := &stubGenerator{response: "q1"}
	generator := NewQuestionGenerator(stub, zap.NewNop())

	questions := generator.Generate(context.Background(), nil, model.ExperienceJunior, 5)

	assert.Empty(t, questions)
	assert.Equal(t, 0, stub.calls)
}
