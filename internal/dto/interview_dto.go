package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/janvipargai1/ai-interview-simulator/internal/model"
)

type UploadResumeResponse struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
}

type GenerateQuestionsRequest struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Count      int      `json:"count"`
}

type QuestionsResponse struct {
	Questions []string `json:"questions"`
	Error     string   `json:"error,omitempty"`
}

type StartInterviewRequest struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Questions  []string `json:"questions"`
}

type StartInterviewResponse struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Current  int       `json:"current"`
	Total    int       `json:"total"`
}

type CurrentQuestionResponse struct {
	Question string `json:"question"`
	Current  int    `json:"current"`
	Total    int    `json:"total"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type AnswerResponse struct {
	Evaluation   model.Evaluation `json:"evaluation"`
	Done         bool             `json:"done"`
	NextQuestion string           `json:"next_question,omitempty"`
}

type ResultsResponse struct {
	ID         uuid.UUID              `json:"id"`
	State      string                 `json:"state"`
	Experience string                 `json:"experience"`
	Results    []model.QuestionResult `json:"results"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}
