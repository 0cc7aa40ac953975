package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/janvipargai1/ai-interview-simulator/internal/model"
	"go.uber.org/zap"
)

// ContentGenerator is the prompt-in/text-out contract with the model
// service. Both GeminiService and OpenRouterService satisfy it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DefaultQuestionCount is used when the caller does not ask for a
// specific number of questions.
const DefaultQuestionCount = 5

// QuestionGenerator turns a skill set and experience level into an
// ordered list of interview questions via one model call.
type QuestionGenerator struct {
	generator ContentGenerator
	logger    *zap.Logger
}

func NewQuestionGenerator(generator ContentGenerator, logger *zap.Logger) *QuestionGenerator {
	return &QuestionGenerator{generator: generator, logger: logger}
}

// Generate asks the model for count questions tailored to the given
// skills and level. A failed call or unparseable output yields an empty
// slice, never an error: the caller decides whether to retry or report.
func (g *QuestionGenerator) Generate(ctx context.Context, skills []string, experience model.ExperienceLevel, count int) []string {
	if len(skills) == 0 {
		g.logger.Warn("question generation requested with no skills")
		return nil
	}
	if count <= 0 {
		count = DefaultQuestionCount
	}

	prompt := buildQuestionPrompt(skills, experience, count)

	raw, err := g.generator.GenerateContent(ctx, prompt)
	if err != nil {
		g.logger.Warn("question generation failed", zap.Error(err))
		return nil
	}

	questions := parseQuestions(raw)
	if len(questions) == 0 {
		g.logger.Warn("no questions parsed from model output",
			zap.Int("response_length", len(raw)))
		return nil
	}
	if len(questions) > count {
		questions = questions[:count]
	}

	g.logger.Info("questions generated",
		zap.Int("requested", count),
		zap.Int("parsed", len(questions)),
		zap.String("experience", string(experience)),
	)
	return questions
}

func buildQuestionPrompt(skills []string, experience model.ExperienceLevel, count int) string {
	return fmt.Sprintf(`You are a technical interviewer.

Generate exactly %d technical interview questions for a candidate with
experience level "%s" and the following skills: %s.

Rules:
- Questions must be appropriate for the experience level.
- Return one question per line.
- Do not number the questions and do not add any other text.`,
		count, experience, strings.Join(skills, ", "))
}

// listPrefix matches bullets and enumerations the model tends to add
// despite the prompt: "1.", "2)", "-", "*", "Q3:" and so on.
var listPrefix = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)]|[Qq]\d+[.:)])\s*`)

func parseQuestions(raw string) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "```") || strings.HasPrefix(line, "#") {
			continue
		}
		line = listPrefix.ReplaceAllString(line, "")
		line = strings.TrimSpace(strings.Trim(line, "`"))
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}
	return questions
}
