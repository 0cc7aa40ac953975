package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/janvipargai1/ai-interview-simulator/internal/model"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// AnswerEvaluator scores one answer per model call and never fails:
// whatever goes wrong between prompt and parsed rubric collapses into
// the sentinel evaluation so the interview can move on.
type AnswerEvaluator struct {
	generator ContentGenerator
	logger    *zap.Logger
}

func NewAnswerEvaluator(generator ContentGenerator, logger *zap.Logger) *AnswerEvaluator {
	return &AnswerEvaluator{generator: generator, logger: logger}
}

// Evaluate asks the model to score the answer and parses the reply into
// the four-field rubric. An empty answer is still scored; it is a
// non-answer, not an error.
func (e *AnswerEvaluator) Evaluate(ctx context.Context, question, answer string, experience model.ExperienceLevel) model.Evaluation {
	prompt := buildEvaluationPrompt(question, answer, experience)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		e.logger.Warn("answer evaluation call failed, using sentinel", zap.Error(err))
		return model.SentinelEvaluation()
	}

	evaluation, ok := parseEvaluation(raw)
	if !ok {
		e.logger.Warn("unparseable evaluation response, using sentinel",
			zap.Int("response_length", len(raw)))
		return model.SentinelEvaluation()
	}
	return evaluation
}

func buildEvaluationPrompt(question, answer string, experience model.ExperienceLevel) string {
	return fmt.Sprintf(`You are a technical interviewer.

Question:
%s

Candidate Answer:
%s

Experience Level:
%s

Evaluate strictly and respond in JSON ONLY:

{
  "technical": number between 0 and 10,
  "clarity": number between 0 and 10,
  "confidence": number between 0 and 10,
  "filler_words": "yes" or "no"
}`, question, answer, experience)
}

// parseEvaluation accepts the model output only when it is a single
// JSON object (optionally fenced in a markdown code block) with all
// four fields present, integer scores inside 0..10 and a yes/no
// filler_words value. Anything else reports failure.
func parseEvaluation(raw string) (model.Evaluation, bool) {
	cleaned := stripCodeFence(raw)

	if !gjson.Valid(cleaned) {
		return model.Evaluation{}, false
	}
	root := gjson.Parse(cleaned)
	if !root.IsObject() {
		return model.Evaluation{}, false
	}

	scores := make(map[string]int, 3)
	for _, field := range []string{"technical", "clarity", "confidence"} {
		value := root.Get(field)
		if value.Type != gjson.Number {
			return model.Evaluation{}, false
		}
		f := value.Float()
		n := int(f)
		if f != float64(n) || n < 0 || n > 10 {
			return model.Evaluation{}, false
		}
		scores[field] = n
	}

	filler := root.Get("filler_words")
	if filler.Type != gjson.String {
		return model.Evaluation{}, false
	}
	fillerValue := strings.ToLower(strings.TrimSpace(filler.String()))
	switch fillerValue {
	case model.FillerWordsYes, model.FillerWordsNo, model.FillerWordsUnknown:
	default:
		return model.Evaluation{}, false
	}

	return model.Evaluation{
		Technical:   scores["technical"],
		Clarity:     scores["clarity"],
		Confidence:  scores["confidence"],
		FillerWords: fillerValue,
	}, true
}

// stripCodeFence removes a surrounding ```json ... ``` block. Models
// add those even when told not to.
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
