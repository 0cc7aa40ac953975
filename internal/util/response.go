package util

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/janvipargai1/ai-interview-simulator/internal/config"
)

type SuccessResponseFormat struct {
	Code    int
	Message string
	Data    any
}

type OrderedSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
}

type OrderedErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// SuccessResponse sends the standard success envelope.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	response := OrderedSuccessResponse{
		Success: true,
		Message: params.Message,
		Data:    params.Data,
	}
	return c.Status(code).JSON(response)
}

// ErrorResponse sends the standard error envelope. Developer details
// and stack traces are attached outside production only.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	response := OrderedErrorResponse{
		Success: false,
		Message: params.Message,
	}
	if params.Details != nil {
		response.Details = params.Details
	}
	if config.LoadAppConfig().Env != "production" {
		if len(errs) > 0 && errs[0] != nil {
			response.DevMessage = errs[0].Error()
			response.Trace = string(debug.Stack())
		}
		if params.DevMessage != "" {
			response.DevMessage = params.DevMessage
		}
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(response)
}
