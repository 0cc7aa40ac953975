package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/janvipargai1/ai-interview-simulator/internal/dto"
	"github.com/janvipargai1/ai-interview-simulator/internal/middleware"
	"github.com/janvipargai1/ai-interview-simulator/internal/model"
	"github.com/janvipargai1/ai-interview-simulator/internal/usecase"
	"github.com/janvipargai1/ai-interview-simulator/internal/util"
)

const maxResumeSize = 5 * 1024 * 1024

type InterviewHandler struct {
	uc        *usecase.InterviewUsecase
	uploadDir string
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc, uploadDir: "./uploads/resumes/"}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/upload_resume", middleware.RateLimiter(5, 1*time.Minute), h.UploadResume)
	app.Post("/generate_questions", middleware.RateLimiter(10, 1*time.Minute), h.GenerateQuestions)
	app.Get("/questions", h.Questions)

	interview := app.Group("/interview")
	interview.Post("/start", h.Start)
	interview.Get("/:id/question", h.CurrentQuestion)
	interview.Post("/:id/answer", h.SubmitAnswer)
	interview.Post("/:id/end", h.End)
	interview.Get("/:id/results", h.Results)
}

// UploadResume accepts a PDF resume, extracts its text and returns the
// detected skills and experience level. The candidate can edit both
// before generating questions.
func (h *InterviewHandler) UploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		}, err)
	}

	if file.Size > maxResumeSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is too large (max 5MB)",
		})
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "only PDF resumes are supported",
		})
	}

	savePath := filepath.Join(h.uploadDir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save resume file",
		}, err)
	}
	defer os.Remove(savePath)

	skills, experience, err := h.uc.AnalyzeResume(savePath)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "failed to analyze resume",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Resume analyzed",
		Data: dto.UploadResumeResponse{
			Skills:     skills,
			Experience: string(experience),
		},
	})
}

// GenerateQuestions asks the model for a tailored question list. A
// failed generation comes back with an empty list and an error string,
// mirroring the never-halt contract of the generator.
func (h *InterviewHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	if len(req.Skills) == 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "at least one skill is required",
		})
	}

	experience := model.NormalizeExperience(req.Experience)
	questions := h.uc.GenerateQuestions(c.UserContext(), req.Skills, experience, req.Count)

	resp := dto.QuestionsResponse{Questions: questions}
	if len(questions) == 0 {
		resp.Questions = []string{}
		resp.Error = "question generation failed, try again"
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Questions generated",
		Data:    resp,
	})
}

func (h *InterviewHandler) Questions(c *fiber.Ctx) error {
	questions := h.uc.LastQuestions()
	if questions == nil {
		questions = []string{}
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Current question list",
		Data:    dto.QuestionsResponse{Questions: questions},
	})
}

func (h *InterviewHandler) Start(c *fiber.Ctx) error {
	var req dto.StartInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	session, err := h.uc.StartInterview(req.Skills, model.NormalizeExperience(req.Experience), req.Questions)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "cannot start interview",
		}, err)
	}

	question, current, total, err := h.uc.CurrentQuestion(session.ID.String())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read first question",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Interview started",
		Data: dto.StartInterviewResponse{
			ID:       session.ID,
			Question: question,
			Current:  current,
			Total:    total,
		},
	})
}

func (h *InterviewHandler) CurrentQuestion(c *fiber.Ctx) error {
	question, current, total, err := h.uc.CurrentQuestion(c.Params("id"))
	if err != nil {
		return h.sessionError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Current question",
		Data: dto.CurrentQuestionResponse{
			Question: question,
			Current:  current,
			Total:    total,
		},
	})
}

func (h *InterviewHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	result, done, next, err := h.uc.SubmitAnswer(c.UserContext(), c.Params("id"), req.Answer)
	if err != nil {
		return h.sessionError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Answer recorded",
		Data: dto.AnswerResponse{
			Evaluation:   result.Evaluation,
			Done:         done,
			NextQuestion: next,
		},
	})
}

func (h *InterviewHandler) End(c *fiber.Ctx) error {
	if err := h.uc.EndInterview(c.Params("id")); err != nil {
		return h.sessionError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interview ended",
		Data:    fiber.Map{"status": string(model.StateEnded)},
	})
}

func (h *InterviewHandler) Results(c *fiber.Ctx) error {
	session, err := h.uc.Results(c.Params("id"))
	if err != nil {
		return h.sessionError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interview results",
		Data: dto.ResultsResponse{
			ID:         session.ID,
			State:      string(session.State),
			Experience: string(session.Experience),
			Results:    session.Results,
			CreatedAt:  session.CreatedAt,
			UpdatedAt:  session.UpdatedAt,
		},
	})
}

// sessionError maps state-machine misuse and lookups onto HTTP codes:
// unknown session 404, wrong-state operations 409.
func (h *InterviewHandler) sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidState):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "operation not valid in current session state",
		}, err)
	case errors.Is(err, model.ErrOutOfRange):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "no current question",
		}, err)
	case strings.Contains(err.Error(), "not found"):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "session not found",
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "interview operation failed",
		}, err)
	}
}
