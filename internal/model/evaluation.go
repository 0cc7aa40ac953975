package model

const (
	FillerWordsYes     = "yes"
	FillerWordsNo      = "no"
	FillerWordsUnknown = "unknown"
)

// Evaluation is the four-field rubric for a single answer.
type Evaluation struct {
	Technical   int    `json:"technical"`
	Clarity     int    `json:"clarity"`
	Confidence  int    `json:"confidence"`
	FillerWords string `json:"filler_words"` // "yes", "no" or "unknown"
}

// SentinelEvaluation is returned whenever the scoring model's output
// cannot be trusted. The interview keeps moving; the answer simply
// scores zero with filler_words marked unknown.
func SentinelEvaluation() Evaluation {
	return Evaluation{
		Technical:   0,
		Clarity:     0,
		Confidence:  0,
		FillerWords: FillerWordsUnknown,
	}
}

// IsSentinel reports whether e equals the degraded sentinel record.
func (e Evaluation) IsSentinel() bool {
	return e == SentinelEvaluation()
}

// QuestionResult pairs one question with the candidate's answer and
// its evaluation.
type QuestionResult struct {
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Evaluation Evaluation `json:"evaluation"`
}
